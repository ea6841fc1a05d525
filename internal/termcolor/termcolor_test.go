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

package termcolor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{
		"":        ModeAuto,
		"auto":    ModeAuto,
		"Always":  ModeAlways,
		" never ": ModeNever,
	}
	for in, want := range cases {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseMode("sometimes"); err == nil {
		t.Error("invalid mode accepted")
	}
	for _, m := range []Mode{ModeAuto, ModeAlways, ModeNever} {
		back, err := ParseMode(m.String())
		if err != nil || back != m {
			t.Errorf("%v: round trip gave %v, %v", m, back, err)
		}
	}
}

func TestEnvMap(t *testing.T) {
	got := EnvMap([]string{"A=1", "B=", "C", "", "D=x=y"})
	want := map[string]string{"A": "1", "B": "", "C": "", "D": "x=y"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("EnvMap (-want +got):\n%s", d)
	}
}

func TestEnabled(t *testing.T) {
	cases := []struct {
		mode Mode
		env  map[string]string
		want bool
	}{
		{ModeAlways, map[string]string{"NO_COLOR": "1"}, true},
		{ModeNever, map[string]string{"FORCE_COLOR": "1"}, false},
		{ModeAuto, map[string]string{"TERM": "dumb", "FORCE_COLOR": "1"}, false},
		{ModeAuto, map[string]string{"NO_COLOR": "1", "FORCE_COLOR": "1"}, false},
		{ModeAuto, map[string]string{"CLICOLOR": "0", "FORCE_COLOR": "1"}, false},
		{ModeAuto, map[string]string{"CLICOLOR_FORCE": "1"}, true},
		{ModeAuto, map[string]string{"FORCE_COLOR": "0"}, false},
		{ModeAuto, nil, false},
	}
	for i, c := range cases {
		// A nil file is never a terminal.
		if got := Enabled(c.mode, nil, c.env); got != c.want {
			t.Errorf("%d: Enabled(%v, %v) = %t, want %t", i, c.mode, c.env, got, c.want)
		}
	}
}

func TestDetectProfile(t *testing.T) {
	cases := []struct {
		env  map[string]string
		want Profile
	}{
		{map[string]string{"COLORTERM": "truecolor"}, ProfileTrueColor},
		{map[string]string{"COLORTERM": "24bit", "TERM": "xterm"}, ProfileTrueColor},
		{map[string]string{"TERM": "xterm-256color"}, ProfileANSI256},
		{map[string]string{"TERM": "xterm"}, ProfileBasic8},
		{nil, ProfileBasic8},
	}
	for _, c := range cases {
		if got := DetectProfile(c.env); got != c.want {
			t.Errorf("DetectProfile(%v) = %v, want %v", c.env, got, c.want)
		}
	}
}

func TestToANSI256(t *testing.T) {
	cases := []struct {
		in   [3]uint8
		want int
	}{
		{[3]uint8{0, 0, 0}, 16},
		{[3]uint8{255, 255, 255}, 231},
		{[3]uint8{255, 0, 0}, 196},
		{[3]uint8{0, 255, 0}, 46},
		{[3]uint8{0, 0, 255}, 21},
		{[3]uint8{128, 128, 128}, 243},
	}
	for _, c := range cases {
		if got := ToANSI256(c.in); got != c.want {
			t.Errorf("ToANSI256(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestSwatch(t *testing.T) {
	fg := [3]uint8{255, 0, 0}
	bg := [3]uint8{255, 255, 255}

	got := Swatch(ProfileTrueColor, fg, bg, "x")
	if want := "\x1b[38;2;255;0;0;48;2;255;255;255mx\x1b[0m"; got != want {
		t.Errorf("true color: got %q, want %q", got, want)
	}
	got = Swatch(ProfileANSI256, fg, bg, "x")
	if want := "\x1b[38;5;196;48;5;231mx\x1b[0m"; got != want {
		t.Errorf("256 colors: got %q, want %q", got, want)
	}
	if got := Swatch(ProfileBasic8, fg, bg, "x"); got != "x" {
		t.Errorf("basic: got %q", got)
	}
}
