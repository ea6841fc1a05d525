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

// Package termcolor decides whether and how colors are shown on a terminal,
// and formats color swatches using ANSI escape sequences.
package termcolor

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Mode selects whether colors are emitted.
type Mode int

// These are the supported color modes.
const (
	ModeAuto Mode = iota
	ModeAlways
	ModeNever
)

func (m Mode) String() string {
	switch m {
	case ModeAlways:
		return "always"
	case ModeNever:
		return "never"
	default:
		return "auto"
	}
}

// ParseMode parses "auto", "always" or "never".  The empty string means
// "auto".
func ParseMode(v string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "auto":
		return ModeAuto, nil
	case "always":
		return ModeAlways, nil
	case "never":
		return ModeNever, nil
	default:
		return ModeAuto, fmt.Errorf("unknown color mode %q", v)
	}
}

// Profile describes the color capabilities of a terminal.
type Profile int

// These are the recognized terminal profiles.
const (
	ProfileBasic8 Profile = iota
	ProfileANSI256
	ProfileTrueColor
)

// EnvMap converts a list of "key=value" strings, as returned by
// [os.Environ], into a map.
func EnvMap(values []string) map[string]string {
	env := make(map[string]string, len(values))
	for _, entry := range values {
		if entry == "" {
			continue
		}
		key, value, _ := strings.Cut(entry, "=")
		env[key] = value
	}
	return env
}

// Enabled reports whether colors should be written to out.
//
// For ModeAuto the environment is consulted, first match wins:
//  1. TERM=dumb disables colors.
//  2. A non-empty NO_COLOR disables colors.
//  3. CLICOLOR=0 disables colors.
//  4. A non-zero CLICOLOR_FORCE or FORCE_COLOR enables colors.
//  5. Otherwise colors are used if out is a terminal.
func Enabled(mode Mode, out *os.File, env map[string]string) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	}

	if strings.EqualFold(strings.TrimSpace(env["TERM"]), "dumb") {
		return false
	}
	if strings.TrimSpace(env["NO_COLOR"]) != "" {
		return false
	}
	if strings.TrimSpace(env["CLICOLOR"]) == "0" {
		return false
	}
	if isForced(env["CLICOLOR_FORCE"]) || isForced(env["FORCE_COLOR"]) {
		return true
	}
	return out != nil && term.IsTerminal(int(out.Fd()))
}

func isForced(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && v != "0"
}

// DetectProfile inspects COLORTERM and TERM to find the color profile.
func DetectProfile(env map[string]string) Profile {
	ct := strings.ToLower(env["COLORTERM"])
	if strings.Contains(ct, "truecolor") || strings.Contains(ct, "24bit") {
		return ProfileTrueColor
	}
	if strings.Contains(strings.ToLower(env["TERM"]), "256color") {
		return ProfileANSI256
	}
	return ProfileBasic8
}
