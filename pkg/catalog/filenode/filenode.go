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

// Package filenode implements the game/folder tree a system's catalog
// is built from. Each folder node exclusively owns its ordered children;
// the parent pointer is a non-owning back-reference for upward queries
// only.
package filenode

import (
	"math/rand/v2"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// Kind distinguishes game leaves from folder containers. It is fixed at
// node creation.
type Kind int

const (
	Game Kind = iota + 1
	Folder
)

func (k Kind) String() string {
	switch k {
	case Game:
		return "game"
	case Folder:
		return "folder"
	default:
		return "unknown"
	}
}

// FileNode is a single entry in a system's tree, either a game or a
// folder. The path is the unique key among its siblings.
type FileNode struct {
	metadata *Metadata
	parent   *FileNode
	path     string
	children []*FileNode
	kind     Kind
}

// New creates an unlinked node of the given kind for a filesystem path.
func New(kind Kind, path string) *FileNode {
	return &FileNode{
		kind:     kind,
		path:     path,
		metadata: newMetadata(kind),
	}
}

func (n *FileNode) Kind() Kind          { return n.kind }
func (n *FileNode) Path() string        { return n.path }
func (n *FileNode) Metadata() *Metadata { return n.metadata }
func (n *FileNode) Parent() *FileNode   { return n.parent }

// Children returns the node's owned children in their current order.
// Callers must not modify the returned slice.
func (n *FileNode) Children() []*FileNode { return n.children }

// IsGame reports whether the node is a game leaf.
func (n *FileNode) IsGame() bool { return n.kind == Game }

// AddChild links a node under this folder, taking ownership. A child
// with a duplicate path is dropped to preserve sibling path uniqueness.
func (n *FileNode) AddChild(child *FileNode) {
	if n.kind != Folder {
		log.Warn().
			Str("path", n.path).
			Msg("cannot add child to a game node")
		return
	}
	if n.ChildByPath(child.path) != nil {
		log.Debug().
			Str("path", child.path).
			Msg("dropping duplicate child entry")
		return
	}
	child.parent = n
	n.children = append(n.children, child)
}

// ChildByPath finds a direct child by exact path, or nil.
func (n *FileNode) ChildByPath(path string) *FileNode {
	for _, c := range n.children {
		if c.path == path {
			return c
		}
	}
	return nil
}

// FindByPath finds a descendant (or the node itself) by exact path.
func (n *FileNode) FindByPath(path string) *FileNode {
	if n.path == path {
		return n
	}
	for _, c := range n.children {
		if found := c.FindByPath(path); found != nil {
			return found
		}
	}
	return nil
}

// GamesRecursive collects all game descendants in tree order. A nil
// filter collects every game; otherwise only games the filter accepts.
func (n *FileNode) GamesRecursive(filter func(*FileNode) bool) []*FileNode {
	var games []*FileNode
	n.walk(func(node *FileNode) {
		if node.kind == Game && (filter == nil || filter(node)) {
			games = append(games, node)
		}
	})
	return games
}

// CountGames counts game descendants, optionally filtered.
func (n *FileNode) CountGames(filter func(*FileNode) bool) int {
	count := 0
	n.walk(func(node *FileNode) {
		if node.kind == Game && (filter == nil || filter(node)) {
			count++
		}
	})
	return count
}

// AnyChanged reports whether this node or any descendant has modified
// metadata. Used to decide whether a gamelist write is needed at all.
func (n *FileNode) AnyChanged() bool {
	changed := false
	n.walk(func(node *FileNode) {
		if node.metadata.WasChanged() {
			changed = true
		}
	})
	return changed
}

func (n *FileNode) walk(visit func(*FileNode)) {
	visit(n)
	for _, c := range n.children {
		c.walk(visit)
	}
}

// DisplayName returns the metadata name, falling back to the path base
// name without its extension.
func (n *FileNode) DisplayName() string {
	if name := n.metadata.Get("name"); name != "" {
		return name
	}
	base := filepath.Base(n.path)
	if ext := filepath.Ext(base); ext != "" && ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}

// PickRandom selects one node uniformly from a set, or nil when the set
// is empty. A nil rng falls back to the shared generator.
func PickRandom(nodes []*FileNode, rng *rand.Rand) *FileNode {
	if len(nodes) == 0 {
		return nil
	}
	if rng != nil {
		return nodes[rng.IntN(len(nodes))]
	}
	return nodes[rand.IntN(len(nodes))]
}
