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

// Package helpers provides filesystem fixtures for catalog tests.
package helpers

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// FSHelper wraps a filesystem with fixture builders for ROM libraries,
// gamelists and config documents.
type FSHelper struct {
	Fs afero.Fs
}

// NewMemoryFS creates a helper over an in-memory filesystem. Memory
// filesystems have no symlink support; symlink tests use NewOSFS with
// t.TempDir().
func NewMemoryFS() *FSHelper {
	return &FSHelper{Fs: afero.NewMemMapFs()}
}

// NewOSFS creates a helper over the real filesystem.
func NewOSFS() *FSHelper {
	return &FSHelper{Fs: afero.NewOsFs()}
}

// CreateDirectoryStructure builds a directory tree from a nested map:
// string values are file contents, nested maps are directories, nil is
// an empty directory.
func (h *FSHelper) CreateDirectoryStructure(basePath string, structure map[string]any) error {
	for name, content := range structure {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			if err := h.WriteFile(fullPath, []byte(v)); err != nil {
				return err
			}
		case map[string]any:
			if err := h.Fs.MkdirAll(fullPath, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", fullPath, err)
			}
			if err := h.CreateDirectoryStructure(fullPath, v); err != nil {
				return err
			}
		case nil:
			if err := h.Fs.MkdirAll(fullPath, 0o755); err != nil {
				return fmt.Errorf("failed to create empty directory %s: %w", fullPath, err)
			}
		default:
			return fmt.Errorf("unsupported structure value for %s: %T", fullPath, content)
		}
	}
	return nil
}

// CreateRomLibrary creates one directory per system under basePath with
// empty ROM files named after the given entries.
func (h *FSHelper) CreateRomLibrary(basePath string, systems map[string][]string) error {
	for system, roms := range systems {
		systemPath := filepath.Join(basePath, system)
		if err := h.Fs.MkdirAll(systemPath, 0o755); err != nil {
			return fmt.Errorf("failed to create system directory %s: %w", systemPath, err)
		}
		for _, rom := range roms {
			romPath := filepath.Join(systemPath, rom)
			if err := afero.WriteFile(h.Fs, romPath, []byte{}, 0o644); err != nil {
				return fmt.Errorf("failed to create rom file %s: %w", romPath, err)
			}
		}
	}
	return nil
}

// WriteSystemsConfig writes an es_systems.cfg document at path.
func (h *FSHelper) WriteSystemsConfig(path, xmlBody string) error {
	return h.WriteFile(path, []byte(xmlBody))
}

// WriteGamelist writes a gamelist.xml document at path.
func (h *FSHelper) WriteGamelist(path, xmlBody string) error {
	return h.WriteFile(path, []byte(xmlBody))
}

// WriteFile writes content to a file, creating parent directories.
func (h *FSHelper) WriteFile(path string, content []byte) error {
	if err := h.Fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for file %s: %w", path, err)
	}
	if err := afero.WriteFile(h.Fs, path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// ReadFile reads a file's content.
func (h *FSHelper) ReadFile(path string) ([]byte, error) {
	data, err := afero.ReadFile(h.Fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return data, nil
}

// FileExists checks if a file exists.
func (h *FSHelper) FileExists(path string) bool {
	exists, err := afero.Exists(h.Fs, path)
	return err == nil && exists
}
