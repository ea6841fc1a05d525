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
	"slices"

	"golang.org/x/exp/maps"
)

// Scheme assigns color families to named text roles, for example
// "link:url" or "datetime".
type Scheme map[string]Family

// DefaultScheme returns the roles used for note text.
// Each call returns a new map, which the caller may modify.
func DefaultScheme() Scheme {
	return Scheme{
		"note-title":    Blue,
		"datetime":      Grey,
		"link:internal": Blue,
		"link:url":      Blue,
		"link:broken":   Grey,
	}
}

// Roles returns the role names in lexicographic order.
func (s Scheme) Roles() []string {
	roles := maps.Keys(s)
	slices.Sort(roles)
	return roles
}

// Foreground returns the color for the given role on the background bg.
// The second return value is false if the role is not part of the scheme.
func (s Scheme) Foreground(bg RGB, role string) (RGB, bool) {
	f, ok := s[role]
	if !ok {
		return RGB{}, false
	}
	return Foreground(bg, f), true
}

// Resolve computes the colors of all roles on the background bg.
func (s Scheme) Resolve(bg RGB) map[string]RGB {
	res := make(map[string]RGB, len(s))
	for role, f := range s {
		res[role] = Foreground(bg, f)
	}
	return res
}

// Merge returns a new scheme containing the roles of s, with the entries in
// other taking precedence.
func (s Scheme) Merge(other Scheme) Scheme {
	res := make(Scheme, len(s)+len(other))
	for role, f := range s {
		res[role] = f
	}
	for role, f := range other {
		res[role] = f
	}
	return res
}
