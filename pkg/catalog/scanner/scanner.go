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

// Package scanner walks a system's start path and builds its game/folder
// tree. Classification is by case-sensitive extension match against the
// system's recognized extensions; directories can match an extension too
// and become game entries (single-file-looking cartridge folders).
package scanner

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ZaparooProject/es-catalog/pkg/catalog/filenode"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Scanner populates folder nodes from a filesystem. A Scanner is meant
// for a single system scan: it remembers canonical paths it already
// entered to break symlink cycles.
type Scanner struct {
	fsys       afero.Fs
	visited    map[string]struct{}
	extensions []string
	showHidden bool
}

// New creates a scanner over a filesystem for one system's recognized
// extensions. Extensions include the leading dot and match
// case-sensitively.
func New(fsys afero.Fs, extensions []string, showHidden bool) *Scanner {
	return &Scanner{
		fsys:       fsys,
		extensions: extensions,
		showHidden: showHidden,
		visited:    make(map[string]struct{}),
	}
}

// Populate recursively fills a folder node's children from disk. If the
// node's path is not a directory the tree is left untouched. Traversal
// order is filesystem enumeration order; callers impose display order
// with an explicit sort afterwards.
func (s *Scanner) Populate(folder *filenode.FileNode) {
	folderPath := folder.Path()

	info, err := s.fsys.Stat(folderPath)
	if err != nil || !info.IsDir() {
		log.Warn().
			Str("path", folderPath).
			Msg("folder path is not a directory")
		return
	}

	// A symlinked folder whose target is an ancestor of the original
	// path would recurse forever.
	if s.isSymlink(folderPath) {
		canonical, err := filepath.EvalSymlinks(folderPath)
		if err != nil {
			log.Warn().
				Err(err).
				Str("path", folderPath).
				Msg("cannot resolve symlinked folder")
			return
		}
		if strings.HasPrefix(folderPath, canonical) {
			log.Warn().
				Str("path", folderPath).
				Msg("skipping infinitely recursive symlink")
			return
		}
	}

	// The ancestor-prefix check misses cross-linked directories outside
	// the ancestor relation, so also refuse to enter the same canonical
	// directory twice.
	canonical := s.canonical(folderPath)
	if _, seen := s.visited[canonical]; seen {
		log.Warn().
			Str("path", folderPath).
			Msg("skipping already visited directory")
		return
	}
	s.visited[canonical] = struct{}{}

	entries, err := afero.ReadDir(s.fsys, folderPath)
	if err != nil {
		log.Warn().
			Err(err).
			Str("path", folderPath).
			Msg("failed to read directory")
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		ext := extensionOf(name)
		if strings.TrimSuffix(name, ext) == "" {
			continue
		}
		entryPath := filepath.Join(folderPath, name)

		isGame := false
		if slices.Contains(s.extensions, ext) {
			// dot-prefix hidden detection; the Windows hidden
			// attribute is not checked
			if !s.showHidden && strings.HasPrefix(name, ".") {
				continue
			}
			folder.AddChild(filenode.New(filenode.Game, entryPath))
			isGame = true
		}

		if !isGame && s.isDir(entryPath) {
			sub := filenode.New(filenode.Folder, entryPath)
			s.Populate(sub)
			// folders exist only to route to games
			if len(sub.Children()) == 0 {
				continue
			}
			folder.AddChild(sub)
		}
	}
}

// extensionOf returns the substring from the last dot, empty if none.
func extensionOf(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return ""
	}
	return name[idx:]
}

// isDir follows symlinks, matching how scanned entries are classified.
func (s *Scanner) isDir(path string) bool {
	info, err := s.fsys.Stat(path)
	return err == nil && info.IsDir()
}

func (s *Scanner) isSymlink(path string) bool {
	lfs, ok := s.fsys.(afero.Lstater)
	if !ok {
		return false
	}
	info, lstatCalled, err := lfs.LstatIfPossible(path)
	if err != nil || !lstatCalled {
		return false
	}
	return info.Mode()&os.ModeSymlink != 0
}

// canonical resolves symlinks on filesystems that support them and
// falls back to the path itself everywhere else.
func (s *Scanner) canonical(path string) string {
	lfs, ok := s.fsys.(afero.Lstater)
	if !ok {
		return path
	}
	if _, lstatCalled, err := lfs.LstatIfPossible(path); err != nil || !lstatCalled {
		return path
	}
	canonical, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path
	}
	return canonical
}
