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

package swatch

import (
	"image/color"
	"testing"

	"seehuhn.de/go/contrast"
)

func TestRender(t *testing.T) {
	bg := contrast.RGB{R: 0xFFFF, G: 0xFFFF, B: 0xE0E0}
	rows := FamilyRows(bg, []contrast.Family{contrast.Red, contrast.DarkBlue, contrast.Black})

	img, err := Render(bg, rows, &Options{FontSize: 48})
	if err != nil {
		t.Fatal(err)
	}

	b := img.Bounds()
	if b.Dx() <= 16 || b.Dy() <= 3*16 {
		t.Fatalf("image too small: %v", b)
	}
	if got, want := img.RGBAAt(0, 0), to8(bg); got != want {
		t.Errorf("background pixel %v, want %v", got, want)
	}

	// Every row must leave at least one fully covered pixel in its color.
	for _, row := range rows {
		want := to8(row.Color)
		found := false
		for y := b.Min.Y; y < b.Max.Y && !found; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if img.RGBAAt(x, y) == want {
					found = true
					break
				}
			}
		}
		if !found {
			t.Errorf("%s: no pixel in color %v", row.Label, want)
		}
	}
}

func TestRenderScale(t *testing.T) {
	bg := contrast.DefaultBackground
	rows := []Row{{Label: "Hello", Color: contrast.RGB{}}}

	small, err := Render(bg, rows, &Options{FontSize: 12, Padding: 4})
	if err != nil {
		t.Fatal(err)
	}
	big, err := Render(bg, rows, &Options{FontSize: 12, Padding: 4, Scale: 3})
	if err != nil {
		t.Fatal(err)
	}
	if big.Bounds().Dx() != 3*small.Bounds().Dx() || big.Bounds().Dy() != 3*small.Bounds().Dy() {
		t.Errorf("scaled size %v, unscaled %v", big.Bounds(), small.Bounds())
	}
}

func TestRenderEmpty(t *testing.T) {
	if _, err := Render(contrast.DefaultBackground, nil, nil); err == nil {
		t.Error("expected an error for an empty sheet")
	}
}

func TestFamilyRows(t *testing.T) {
	bg := contrast.RGB{}
	rows := FamilyRows(bg, contrast.Families())
	if len(rows) != len(contrast.Families()) {
		t.Fatalf("got %d rows", len(rows))
	}
	for i, f := range contrast.Families() {
		if rows[i].Label != f.DisplayName() {
			t.Errorf("row %d: label %q", i, rows[i].Label)
		}
		if rows[i].Color != contrast.Foreground(bg, f) {
			t.Errorf("row %d: color %v", i, rows[i].Color)
		}
	}
}

func to8(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}
