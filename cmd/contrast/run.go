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

package main

import (
	"bufio"
	"fmt"
	"image/png"
	"io"
	"os"

	"seehuhn.de/go/contrast"
	"seehuhn.de/go/contrast/internal/buildinfo"
	"seehuhn.de/go/contrast/internal/config"
	"seehuhn.de/go/contrast/internal/iccprofile"
	"seehuhn.de/go/contrast/internal/profile"
	"seehuhn.de/go/contrast/internal/termcolor"
	"seehuhn.de/go/contrast/swatch"
)

func run(args []string, stdout, stderr io.Writer, env map[string]string) (err error) {
	opt := &options{}
	fs := newFlagSet(stderr, opt)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if opt.version {
		fmt.Fprintln(stdout, buildinfo.Short("contrast"))
		return nil
	}

	stop, err := profile.Start(opt.cpuprofile, opt.memprofile)
	if err != nil {
		return err
	}
	defer func() {
		if stopErr := stop(); err == nil {
			err = stopErr
		}
	}()

	logger := newLogger(stderr, opt.verbose)

	cfg, err := config.Load(opt.config)
	if err != nil {
		return err
	}
	if opt.config != "" {
		logger.Debug("loaded configuration", "file", opt.config, "roles", len(cfg.Roles))
	}

	if opt.profile != "" {
		if err := iccprofile.CheckFile(opt.profile); err != nil {
			return err
		}
		logger.Debug("display profile accepted", "file", opt.profile)
	}

	bg := contrast.DefaultBackground
	if cfg.Background != nil {
		bg = *cfg.Background
	}
	if opt.background != "" {
		bg, err = contrast.ParseRGB(opt.background)
		if err != nil {
			return usageError{msg: err.Error()}
		}
	}
	logger.Debug("background", "color", bg.String(), "lab", bg.Lab())

	modeName := opt.color
	if modeName == "" && cfg.Color != nil {
		modeName = *cfg.Color
	}
	mode, err := termcolor.ParseMode(modeName)
	if err != nil {
		return usageError{msg: err.Error()}
	}

	scheme := contrast.DefaultScheme().Merge(cfg.Roles)
	entries, err := selectEntries(scheme, fs.Args(), opt.roles)
	if err != nil {
		return usageError{msg: err.Error()}
	}

	out, _ := stdout.(*os.File)
	t := &table{
		bg:      bg,
		colors:  termcolor.Enabled(mode, out, env),
		profile: termcolor.DetectProfile(env),
	}
	logger.Debug("output", "colors", t.colors, "entries", len(entries))

	w := bufio.NewWriter(stdout)
	t.write(w, entries)
	if err := w.Flush(); err != nil {
		return err
	}

	if opt.png != "" {
		if err := writeSheet(opt.png, bg, entries, opt.pngScale); err != nil {
			return err
		}
		logger.Debug("wrote legibility sheet", "file", opt.png)
	}
	return nil
}

// entry is one line of output.
type entry struct {
	name   string
	family contrast.Family
}

// selectEntries decides which lines to show.  Arguments are looked up as
// scheme roles first, then as family names.
func selectEntries(scheme contrast.Scheme, args []string, roles bool) ([]entry, error) {
	var res []entry
	switch {
	case len(args) > 0:
		for _, arg := range args {
			if f, ok := scheme[arg]; ok {
				res = append(res, entry{name: arg, family: f})
				continue
			}
			f, err := contrast.ParseFamily(arg)
			if err != nil {
				return nil, err
			}
			res = append(res, entry{name: f.String(), family: f})
		}
	case roles:
		for _, role := range scheme.Roles() {
			res = append(res, entry{name: role, family: scheme[role]})
		}
	default:
		for _, f := range contrast.Families() {
			res = append(res, entry{name: f.String(), family: f})
		}
	}
	return res, nil
}

func writeSheet(fname string, bg contrast.RGB, entries []entry, scale int) error {
	rows := make([]swatch.Row, len(entries))
	for i, e := range entries {
		rows[i] = swatch.Row{
			Label: e.name,
			Color: contrast.Foreground(bg, e.family),
		}
	}
	img, err := swatch.Render(bg, rows, &swatch.Options{Scale: scale})
	if err != nil {
		return err
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	return nil
}
