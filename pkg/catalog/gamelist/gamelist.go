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

// Package gamelist loads and saves the per-system gamelist.xml sidecar.
// Merging applies sidecar metadata onto an already scanned tree,
// synthesizing entries for games the scanner no longer finds on disk.
// Saving re-derives the whole document from the live tree.
package gamelist

import (
	"encoding/xml"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ZaparooProject/es-catalog/pkg/catalog/filenode"
	"github.com/ZaparooProject/es-catalog/pkg/catalog/paths"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

type xmlField struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

type xmlEntry struct {
	Path   string     `xml:"path"`
	Fields []xmlField `xml:",any"`
}

type xmlDoc struct {
	XMLName xml.Name   `xml:"gameList"`
	Games   []xmlEntry `xml:"game"`
	Folders []xmlEntry `xml:"folder"`
}

// Store reads and writes gamelist sidecar documents for one filesystem.
type Store struct {
	fsys afero.Fs
}

// NewStore creates a gamelist store over a filesystem.
func NewStore(fsys afero.Fs) *Store {
	return &Store{fsys: fsys}
}

// Merge loads the system's sidecar document, if any, and applies it to
// the scanned tree rooted at root. A missing document is not an error.
// A malformed document is a recoverable error: the tree is left with
// scan-only data and the caller decides how loudly to complain.
func (s *Store) Merge(root *filenode.FileNode, systemName string) error {
	path, err := paths.GamelistPath(s.fsys, root.Path(), systemName, false)
	if err != nil {
		return err
	}
	if !paths.Exists(s.fsys, path) {
		log.Debug().
			Str("system", systemName).
			Str("path", path).
			Msg("no gamelist to merge")
		return nil
	}

	data, err := afero.ReadFile(s.fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read gamelist for %s: %w", systemName, err)
	}

	var doc xmlDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse gamelist for %s: %w", systemName, err)
	}

	for _, entry := range doc.Games {
		s.applyEntry(root, entry, filenode.Game)
	}
	for _, entry := range doc.Folders {
		s.applyEntry(root, entry, filenode.Folder)
	}

	log.Debug().
		Str("system", systemName).
		Int("games", len(doc.Games)).
		Int("folders", len(doc.Folders)).
		Msg("merged gamelist")
	return nil
}

func (s *Store) applyEntry(root *filenode.FileNode, entry xmlEntry, kind filenode.Kind) {
	if entry.Path == "" {
		log.Warn().Msg("gamelist entry with empty path, skipping")
		return
	}

	abs := resolveEntryPath(entry.Path, root.Path())
	node := root.FindByPath(abs)
	if node == nil {
		// tolerate entries for files the scanner did not find, e.g.
		// removed files or stale extension config
		node = findOrCreate(root, abs, kind)
		if node == nil {
			return
		}
	}
	if node.Kind() != kind {
		log.Warn().
			Str("path", abs).
			Str("want", kind.String()).
			Str("got", node.Kind().String()).
			Msg("gamelist entry kind mismatch, skipping")
		return
	}

	for _, field := range entry.Fields {
		node.Metadata().Set(field.XMLName.Local, field.Value)
	}
}

// resolveEntryPath turns a sidecar path into an absolute one. Sidecar
// paths are written relative to the system root with a "./" prefix but
// absolute paths are accepted too.
func resolveEntryPath(entryPath, rootPath string) string {
	p := filepath.FromSlash(entryPath)
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	p = strings.TrimPrefix(p, "."+string(filepath.Separator))
	return filepath.Join(rootPath, p)
}

// findOrCreate links a new node at the position implied by its path,
// creating intermediate folders as needed. Paths outside the system
// root are rejected.
func findOrCreate(root *filenode.FileNode, abs string, kind filenode.Kind) *filenode.FileNode {
	rel, err := filepath.Rel(root.Path(), abs)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		log.Warn().
			Str("path", abs).
			Str("root", root.Path()).
			Msg("gamelist entry outside system root, skipping")
		return nil
	}

	segments := strings.Split(rel, string(filepath.Separator))
	cur := root
	curPath := root.Path()
	for _, segment := range segments[:len(segments)-1] {
		curPath = filepath.Join(curPath, segment)
		child := cur.ChildByPath(curPath)
		if child == nil {
			child = filenode.New(filenode.Folder, curPath)
			cur.AddChild(child)
		} else if child.Kind() != filenode.Folder {
			log.Warn().
				Str("path", curPath).
				Msg("gamelist entry path collides with a game, skipping")
			return nil
		}
		cur = child
	}

	node := filenode.New(kind, abs)
	cur.AddChild(node)
	return node
}

// Save rewrites the system's gamelist write target from the live tree.
// Only descendants whose metadata differs from scan-only defaults are
// serialized. An untouched tree writes nothing; a tree whose every
// override was reverted back to defaults removes the stale write target
// instead, so old values are not re-applied on the next load.
func (s *Store) Save(root *filenode.FileNode, systemName string) error {
	var doc xmlDoc
	collect(root, root, &doc)

	if len(doc.Games) == 0 && len(doc.Folders) == 0 {
		if !root.AnyChanged() {
			log.Debug().
				Str("system", systemName).
				Msg("no metadata changes, skipping gamelist write")
			return nil
		}
		return s.removeStale(root, systemName)
	}

	target, err := paths.GamelistPath(s.fsys, root.Path(), systemName, true)
	if err != nil {
		return err
	}

	data, err := xml.MarshalIndent(doc, "", "\t")
	if err != nil {
		return fmt.Errorf("failed to serialize gamelist for %s: %w", systemName, err)
	}
	data = append([]byte(xml.Header), data...)
	data = append(data, '\n')

	if err := afero.WriteFile(s.fsys, target, data, 0o644); err != nil {
		return fmt.Errorf("failed to write gamelist for %s: %w", systemName, err)
	}

	log.Info().
		Str("system", systemName).
		Str("path", target).
		Int("games", len(doc.Games)).
		Int("folders", len(doc.Folders)).
		Msg("saved gamelist")
	return nil
}

// removeStale deletes the sidecar at the write target when the tree no
// longer carries any non-default metadata.
func (s *Store) removeStale(root *filenode.FileNode, systemName string) error {
	target, err := paths.GamelistPath(s.fsys, root.Path(), systemName, true)
	if err != nil {
		return err
	}
	if !paths.Exists(s.fsys, target) {
		return nil
	}
	if err := s.fsys.Remove(target); err != nil {
		return fmt.Errorf("failed to remove stale gamelist for %s: %w", systemName, err)
	}
	log.Info().
		Str("system", systemName).
		Str("path", target).
		Msg("removed stale gamelist")
	return nil
}

func collect(root, node *filenode.FileNode, doc *xmlDoc) {
	for _, child := range node.Children() {
		if !child.Metadata().IsDefault() {
			entry := xmlEntry{Path: entryPathFor(root, child)}
			for _, key := range child.Metadata().Keys() {
				if child.Metadata().IsDefaultKey(key) {
					continue
				}
				entry.Fields = append(entry.Fields, xmlField{
					XMLName: xml.Name{Local: key},
					Value:   child.Metadata().Get(key),
				})
			}
			switch child.Kind() {
			case filenode.Game:
				doc.Games = append(doc.Games, entry)
			case filenode.Folder:
				doc.Folders = append(doc.Folders, entry)
			}
		}
		collect(root, child, doc)
	}
}

// entryPathFor writes paths relative to the system root so a ROM tree
// can be relocated without invalidating its sidecar.
func entryPathFor(root, node *filenode.FileNode) string {
	rel, err := filepath.Rel(root.Path(), node.Path())
	if err != nil || strings.HasPrefix(rel, "..") {
		return node.Path()
	}
	return "./" + filepath.ToSlash(rel)
}
