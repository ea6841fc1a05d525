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

package contrast

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Family identifies a named color family.
//
// The numeric values are part of the public interface and never change.
// New families are added at the end.
type Family int

// These are the supported color families.
const (
	Aqua       Family = 0
	Black      Family = 1
	Blue       Family = 2
	Brown      Family = 3
	Cyan       Family = 4
	DarkBlue   Family = 5
	DarkGreen  Family = 6
	DarkGrey   Family = 7
	DarkRed    Family = 8
	Green      Family = 9
	Grey       Family = 10
	LightBlue  Family = 11
	LightBrown Family = 12
	LightGreen Family = 13
	LightGrey  Family = 14
	LightRed   Family = 15
	Magenta    Family = 16
	Orange     Family = 17
	Purple     Family = 18
	Red        Family = 19
	Violet     Family = 20
	White      Family = 21
	Yellow     Family = 22

	numFamilies = 23
)

var familyNames = [numFamilies]string{
	Aqua:       "aqua",
	Black:      "black",
	Blue:       "blue",
	Brown:      "brown",
	Cyan:       "cyan",
	DarkBlue:   "dark-blue",
	DarkGreen:  "dark-green",
	DarkGrey:   "dark-grey",
	DarkRed:    "dark-red",
	Green:      "green",
	Grey:       "grey",
	LightBlue:  "light-blue",
	LightBrown: "light-brown",
	LightGreen: "light-green",
	LightGrey:  "light-grey",
	LightRed:   "light-red",
	Magenta:    "magenta",
	Orange:     "orange",
	Purple:     "purple",
	Red:        "red",
	Violet:     "violet",
	White:      "white",
	Yellow:     "yellow",
}

var familyByName = func() map[string]Family {
	m := make(map[string]Family, numFamilies)
	for i, name := range familyNames {
		m[name] = Family(i)
	}
	return m
}()

// Families returns all color families, in order of their numeric values.
func Families() []Family {
	res := make([]Family, numFamilies)
	for i := range res {
		res[i] = Family(i)
	}
	return res
}

// IsValid reports whether f is one of the defined color families.
func (f Family) IsValid() bool {
	return f >= 0 && f < numFamilies
}

// String returns the name of the family, for example "dark-blue".
func (f Family) String() string {
	if !f.IsValid() {
		return fmt.Sprintf("Family(%d)", int(f))
	}
	return familyNames[f]
}

// DisplayName returns a human readable name, for example "Dark Blue".
func (f Family) DisplayName() string {
	name := strings.ReplaceAll(f.String(), "-", " ")
	return cases.Title(language.English).String(name)
}

// ParseFamily returns the family with the given name.
//
// Matching ignores case, and hyphens, underscores and spaces are treated
// alike, so that "dark-blue", "Dark Blue" and "DARK_BLUE" all denote
// [DarkBlue].  The spelling "gray" is accepted for "grey".
func ParseFamily(name string) (Family, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)
	key = strings.ReplaceAll(key, "gray", "grey")
	if f, ok := familyByName[key]; ok {
		return f, nil
	}
	return 0, &UnknownFamilyError{Name: name}
}

// UnknownFamilyError is returned by [ParseFamily] if a name does not match
// any color family.
type UnknownFamilyError struct {
	Name string
}

func (err *UnknownFamilyError) Error() string {
	return fmt.Sprintf("unknown color family %q", err.Name)
}

// MarshalText implements [encoding.TextMarshaler].
func (f Family) MarshalText() ([]byte, error) {
	if !f.IsValid() {
		return nil, fmt.Errorf("invalid family %d", int(f))
	}
	return []byte(familyNames[f]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *Family) UnmarshalText(text []byte) error {
	g, err := ParseFamily(string(text))
	if err != nil {
		return err
	}
	*f = g
	return nil
}
