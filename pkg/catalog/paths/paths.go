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

// Package paths resolves the on-disk locations of a system's config
// file, gamelist sidecar and theme file. Each resolver applies a fixed
// fallback order and returns the first candidate that exists; write
// paths are returned regardless of existence.
package paths

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
)

const (
	userDirName  = ".emulationstation"
	ConfigName   = "es_systems.cfg"
	GamelistName = "gamelist.xml"
	ThemeName    = "theme.xml"

	systemFallbackDir = "/etc/emulationstation"
)

var homeOverride string

// Home returns the user's home directory.
func Home() string {
	if homeOverride != "" {
		return homeOverride
	}
	return xdg.Home
}

// SetHomeForTesting overrides the resolved home directory. Pass an
// empty string to restore the real one.
func SetHomeForTesting(home string) {
	homeOverride = home
}

// UserDir returns the per-user data directory holding the config file
// and the gamelist write targets.
func UserDir() string {
	return filepath.Join(Home(), userDirName)
}

// Exists reports whether a path exists on the given filesystem.
func Exists(fsys afero.Fs, path string) bool {
	ok, err := afero.Exists(fsys, path)
	return err == nil && ok
}

// ConfigPath resolves the systems config file. Reads prefer the user
// copy and fall back to the system-wide one; the user copy is always
// the write target.
func ConfigPath(fsys afero.Fs, forWrite bool) string {
	userPath := filepath.Join(UserDir(), ConfigName)
	if forWrite || Exists(fsys, userPath) {
		return userPath
	}
	return filepath.Join(systemFallbackDir, ConfigName)
}

// GamelistPath resolves a system's gamelist sidecar. Read order: the
// co-located copy in the system root, then the per-user copy, then the
// system-wide fallback. The per-user copy is the write target and its
// parent directories are created on demand.
func GamelistPath(fsys afero.Fs, systemRoot, systemName string, forWrite bool) (string, error) {
	local := filepath.Join(systemRoot, GamelistName)
	if !forWrite && Exists(fsys, local) {
		return local, nil
	}

	userPath := filepath.Join(UserDir(), "gamelists", systemName, GamelistName)
	if forWrite {
		if err := fsys.MkdirAll(filepath.Dir(userPath), 0o750); err != nil {
			return "", fmt.Errorf("failed to create gamelist directory for %s: %w", systemName, err)
		}
		return userPath, nil
	}
	if Exists(fsys, userPath) {
		return userPath, nil
	}

	return filepath.Join(systemFallbackDir, "gamelists", systemName, GamelistName), nil
}

// ThemePath resolves a system's theme file: the co-located theme in the
// system root, then the system's folder in the current theme set, then
// the set-wide default. The final fallback is returned without an
// existence check; the caller decides what a missing theme means.
func ThemePath(fsys afero.Fs, systemRoot, themeFolder, themeSet string) string {
	local := filepath.Join(systemRoot, ThemeName)
	if Exists(fsys, local) {
		return local
	}

	system := filepath.Join(themeSet, themeFolder, ThemeName)
	if Exists(fsys, system) {
		return system
	}

	return filepath.Join(themeSet, ThemeName)
}
