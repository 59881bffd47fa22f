// Zaparoo ES Catalog
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Zaparoo ES Catalog.
//
// Zaparoo ES Catalog is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zaparoo ES Catalog is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zaparoo ES Catalog.  If not, see <http://www.gnu.org/licenses/>.

package filenode

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// nameCollator compares display names case-insensitively with proper
// unicode ordering, so "éclair" sorts next to "eclair" instead of after
// "zelda".
var nameCollator = collate.New(language.English, collate.IgnoreCase)

// SortType is one named comparator in the sort-order table.
type SortType struct {
	Compare func(a, b *FileNode) int
	Name    string
}

func compareName(a, b *FileNode) int {
	return nameCollator.CompareString(a.DisplayName(), b.DisplayName())
}

// SortTypes is the ordered table of available sort orders. Index 0 is
// the default applied after every scan/merge.
var SortTypes = []SortType{
	{Name: "filename, ascending", Compare: compareName},
	{Name: "filename, descending", Compare: func(a, b *FileNode) int {
		return -compareName(a, b)
	}},
	{Name: "rating, ascending", Compare: func(a, b *FileNode) int {
		return cmp.Compare(a.Metadata().GetFloat("rating"), b.Metadata().GetFloat("rating"))
	}},
	{Name: "rating, descending", Compare: func(a, b *FileNode) int {
		return cmp.Compare(b.Metadata().GetFloat("rating"), a.Metadata().GetFloat("rating"))
	}},
	{Name: "times played, descending", Compare: func(a, b *FileNode) int {
		return cmp.Compare(b.Metadata().GetInt("playcount"), a.Metadata().GetInt("playcount"))
	}},
	{Name: "last played, descending", Compare: func(a, b *FileNode) int {
		return cmp.Compare(b.Metadata().GetInt("lastplayed"), a.Metadata().GetInt("lastplayed"))
	}},
}

// Sort orders the node's children with the given comparator and recurses
// into child folders. The sort is stable so equal entries keep their
// relative order across repeated sorts.
func (n *FileNode) Sort(st SortType) {
	slices.SortStableFunc(n.children, st.Compare)
	for _, c := range n.children {
		if c.kind == Folder {
			c.Sort(st)
		}
	}
}
