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
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestTree(t *testing.T) *FileNode {
	t.Helper()

	root := New(Folder, "/roms/nes")
	game1 := New(Game, "/roms/nes/mario.nes")
	game2 := New(Game, "/roms/nes/zelda.nes")
	sub := New(Folder, "/roms/nes/hacks")
	game3 := New(Game, "/roms/nes/hacks/kaizo.nes")

	root.AddChild(game1)
	root.AddChild(game2)
	root.AddChild(sub)
	sub.AddChild(game3)

	return root
}

func TestAddChildSetsParent(t *testing.T) {
	t.Parallel()

	root := New(Folder, "/roms/nes")
	game := New(Game, "/roms/nes/mario.nes")
	root.AddChild(game)

	require.Len(t, root.Children(), 1)
	assert.Same(t, root, game.Parent())
	assert.Nil(t, root.Parent())
}

func TestAddChildDropsDuplicatePath(t *testing.T) {
	t.Parallel()

	root := New(Folder, "/roms/nes")
	root.AddChild(New(Game, "/roms/nes/mario.nes"))
	root.AddChild(New(Game, "/roms/nes/mario.nes"))

	assert.Len(t, root.Children(), 1)
}

func TestAddChildToGameRefused(t *testing.T) {
	t.Parallel()

	game := New(Game, "/roms/nes/mario.nes")
	game.AddChild(New(Game, "/roms/nes/other.nes"))

	assert.Empty(t, game.Children())
}

func TestFindByPath(t *testing.T) {
	t.Parallel()

	root := buildTestTree(t)

	found := root.FindByPath("/roms/nes/hacks/kaizo.nes")
	require.NotNil(t, found)
	assert.Equal(t, Game, found.Kind())

	assert.Same(t, root, root.FindByPath("/roms/nes"))
	assert.Nil(t, root.FindByPath("/roms/nes/missing.nes"))
}

func TestCountGames(t *testing.T) {
	t.Parallel()

	root := buildTestTree(t)

	assert.Equal(t, 3, root.CountGames(nil))
	assert.Len(t, root.GamesRecursive(nil), 3)

	// filtered and unfiltered counts partition the game set
	favorites := func(n *FileNode) bool { return n.Metadata().GetBool("favorite") }
	rest := func(n *FileNode) bool { return !n.Metadata().GetBool("favorite") }

	root.FindByPath("/roms/nes/mario.nes").Metadata().Set("favorite", "true")
	assert.Equal(t, 1, root.CountGames(favorites))
	assert.Equal(t, root.CountGames(nil),
		root.CountGames(favorites)+root.CountGames(rest))
}

func TestDisplayNameFallsBackToPathStem(t *testing.T) {
	t.Parallel()

	game := New(Game, "/roms/nes/mario.nes")
	assert.Equal(t, "mario", game.DisplayName())

	game.Metadata().Set("name", "Super Mario Bros.")
	assert.Equal(t, "Super Mario Bros.", game.DisplayName())
}

func TestAnyChanged(t *testing.T) {
	t.Parallel()

	root := buildTestTree(t)
	assert.False(t, root.AnyChanged())

	root.FindByPath("/roms/nes/hacks/kaizo.nes").Metadata().Set("playcount", "3")
	assert.True(t, root.AnyChanged())
}

func TestPickRandomEmptyReturnsNil(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))
	assert.Nil(t, PickRandom(nil, rng))
	assert.Nil(t, PickRandom([]*FileNode{}, rng))
}

func TestPickRandomUniform(t *testing.T) {
	t.Parallel()

	nodes := []*FileNode{
		New(Game, "/roms/a.nes"),
		New(Game, "/roms/b.nes"),
		New(Game, "/roms/c.nes"),
		New(Game, "/roms/d.nes"),
	}

	rng := rand.New(rand.NewPCG(42, 0))
	counts := make(map[*FileNode]int)
	const draws = 4000
	for range draws {
		counts[PickRandom(nodes, rng)]++
	}

	require.Len(t, counts, len(nodes))
	for node, count := range counts {
		assert.InDelta(t, draws/len(nodes), count, draws/10,
			"selection of %s not uniform", node.Path())
	}
}
