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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func childNames(n *FileNode) []string {
	names := make([]string, 0, len(n.Children()))
	for _, c := range n.Children() {
		names = append(names, c.DisplayName())
	}
	return names
}

func TestSortDefaultIsFilenameAscending(t *testing.T) {
	t.Parallel()

	require.NotEmpty(t, SortTypes)
	assert.Equal(t, "filename, ascending", SortTypes[0].Name)
}

func TestSortByNameCaseInsensitive(t *testing.T) {
	t.Parallel()

	root := New(Folder, "/roms/nes")
	root.AddChild(New(Game, "/roms/nes/zelda.nes"))
	root.AddChild(New(Game, "/roms/nes/Mario.nes"))
	root.AddChild(New(Game, "/roms/nes/contra.nes"))

	root.Sort(SortTypes[0])
	assert.Equal(t, []string{"contra", "Mario", "zelda"}, childNames(root))

	root.Sort(SortTypes[1])
	assert.Equal(t, []string{"zelda", "Mario", "contra"}, childNames(root))
}

func TestSortRecursesIntoFolders(t *testing.T) {
	t.Parallel()

	root := New(Folder, "/roms/nes")
	sub := New(Folder, "/roms/nes/hacks")
	sub.AddChild(New(Game, "/roms/nes/hacks/beta.nes"))
	sub.AddChild(New(Game, "/roms/nes/hacks/alpha.nes"))
	root.AddChild(sub)

	root.Sort(SortTypes[0])
	assert.Equal(t, []string{"alpha", "beta"}, childNames(sub))
}

func TestSortByRatingDescending(t *testing.T) {
	t.Parallel()

	root := New(Folder, "/roms/nes")
	low := New(Game, "/roms/nes/low.nes")
	low.Metadata().Set("rating", "0.2")
	high := New(Game, "/roms/nes/high.nes")
	high.Metadata().Set("rating", "0.9")
	root.AddChild(low)
	root.AddChild(high)

	root.Sort(SortTypes[3])
	assert.Equal(t, []string{"high", "low"}, childNames(root))
}

func TestSortStableForEqualKeys(t *testing.T) {
	t.Parallel()

	root := New(Folder, "/roms/nes")
	first := New(Game, "/roms/nes/a/game.nes")
	second := New(Game, "/roms/nes/b/game.nes")
	first.Metadata().Set("name", "Same Name")
	second.Metadata().Set("name", "Same Name")
	root.AddChild(first)
	root.AddChild(second)

	root.Sort(SortTypes[0])
	root.Sort(SortTypes[0])
	require.Len(t, root.Children(), 2)
	assert.Same(t, first, root.Children()[0])
	assert.Same(t, second, root.Children()[1])
}

// TestPropertySortIdempotent verifies sorting twice equals sorting once
// for arbitrary name sets.
func TestPropertySortIdempotent(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		names := rapid.SliceOfN(rapid.StringMatching(`[a-zA-Z0-9 ]{1,12}`), 0, 30).
			Draw(t, "names")

		root := New(Folder, "/roms")
		for i, name := range names {
			game := New(Game, "/roms/"+name+"-"+string(rune('a'+i%26))+".bin")
			game.Metadata().Set("name", name)
			root.AddChild(game)
		}

		root.Sort(SortTypes[0])
		once := childNames(root)
		root.Sort(SortTypes[0])
		twice := childNames(root)

		if len(once) != len(twice) {
			t.Fatalf("sort changed child count: %d != %d", len(once), len(twice))
		}
		for i := range once {
			if once[i] != twice[i] {
				t.Fatalf("sort not idempotent at %d: %q != %q", i, once[i], twice[i])
			}
		}
	})
}
