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

package iccprofile

import (
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/icc"
)

func TestCheckSRGB(t *testing.T) {
	for _, profile := range [][]byte{icc.SRGBv2Profile, icc.SRGBv4Profile} {
		if err := Check(profile); err != nil {
			t.Errorf("sRGB profile rejected: %v", err)
		}
	}
}

func TestCheckInvalid(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("not a profile")} {
		if err := Check(data); err == nil {
			t.Errorf("invalid profile %q accepted", data)
		}
	}
}

func TestCheckFile(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "srgb.icc")
	if err := os.WriteFile(fname, icc.SRGBv4Profile, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := CheckFile(fname); err != nil {
		t.Error(err)
	}
	if err := CheckFile(filepath.Join(dir, "missing.icc")); err == nil {
		t.Error("missing file accepted")
	}
}
