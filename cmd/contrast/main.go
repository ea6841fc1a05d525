// seehuhn.de/go/contrast - readable foreground colors
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Contrast prints readable foreground colors for a background color.
//
// Usage:
//
//	contrast [options] [family|role ...]
//
// Without arguments, all color families are listed.  Arguments may name
// color families ("dark-blue") or text roles from the scheme ("link:url").
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"seehuhn.de/go/contrast/internal/buildinfo"
	"seehuhn.de/go/contrast/internal/termcolor"
)

type options struct {
	background string
	config     string
	color      string
	png        string
	pngScale   int
	profile    string
	roles      bool
	verbose    bool
	version    bool
	cpuprofile string
	memprofile string
}

// usageError indicates invalid command line arguments.
type usageError struct {
	msg string
}

func (err usageError) Error() string {
	return err.msg
}

func main() {
	env := termcolor.EnvMap(os.Environ())
	err := run(os.Args[1:], os.Stdout, os.Stderr, env)
	var uErr usageError
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
	case errors.As(err, &uErr):
		fmt.Fprintln(os.Stderr, "contrast:", err)
		fmt.Fprintln(os.Stderr, "Run 'contrast -h' for usage.")
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, "contrast:", err)
		os.Exit(1)
	}
}

func newFlagSet(stderr io.Writer, opt *options) *flag.FlagSet {
	fs := flag.NewFlagSet("contrast", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opt.background, "bg", "", "background `color` (#rgb, #rrggbb, #rrrrggggbbbb), default white")
	fs.StringVar(&opt.config, "config", "", "configuration `file` (.toml, .yaml, .yml or .json)")
	fs.StringVar(&opt.color, "color", "", "show color swatches: auto, always or never")
	fs.StringVar(&opt.png, "png", "", "write a legibility sheet to `file`")
	fs.IntVar(&opt.pngScale, "png-scale", 1, "enlarge the legibility sheet by this `factor`")
	fs.StringVar(&opt.profile, "profile", "", "ICC display profile `file`, must describe an RGB device")
	fs.BoolVar(&opt.roles, "roles", false, "list the text roles of the scheme instead of the color families")
	fs.BoolVar(&opt.verbose, "v", false, "log debug information to stderr")
	fs.BoolVar(&opt.version, "version", false, "print version information and exit")
	fs.StringVar(&opt.cpuprofile, "cpuprofile", "", "write cpu profile to `file`")
	fs.StringVar(&opt.memprofile, "memprofile", "", "write memory profile to `file`")

	fs.Usage = func() {
		w := fs.Output()
		fmt.Fprintf(w, "contrast - readable foreground colors for a background\n")
		fmt.Fprintf(w, "%s\n\n", buildinfo.Short("contrast"))
		fmt.Fprintf(w, "Usage:\n")
		fmt.Fprintf(w, "  contrast [options] [family|role ...]\n\n")
		fmt.Fprintf(w, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(w, "\nExamples:\n")
		fmt.Fprintf(w, "  contrast -bg '#fdf6e3'\n")
		fmt.Fprintf(w, "  contrast -bg '#202020' red dark-blue link:url\n")
		fmt.Fprintf(w, "  contrast -config scheme.toml -roles -png sheet.png\n")
	}
	return fs
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
