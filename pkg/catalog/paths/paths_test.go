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

package paths

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHome = "/home/tester"

func setupHome(t *testing.T) afero.Fs {
	t.Helper()
	SetHomeForTesting(testHome)
	t.Cleanup(func() { SetHomeForTesting("") })
	return afero.NewMemMapFs()
}

func TestConfigPathPrefersUserCopy(t *testing.T) {
	fsys := setupHome(t)

	userPath := testHome + "/.emulationstation/es_systems.cfg"
	require.NoError(t, afero.WriteFile(fsys, userPath, []byte("<systemList/>"), 0o644))

	assert.Equal(t, userPath, ConfigPath(fsys, false))
}

func TestConfigPathFallsBackSystemWide(t *testing.T) {
	fsys := setupHome(t)

	assert.Equal(t, "/etc/emulationstation/es_systems.cfg", ConfigPath(fsys, false))
}

func TestConfigPathForWriteIgnoresExistence(t *testing.T) {
	fsys := setupHome(t)

	assert.Equal(t, testHome+"/.emulationstation/es_systems.cfg",
		ConfigPath(fsys, true))
}

func TestGamelistPathReadOrder(t *testing.T) {
	fsys := setupHome(t)

	local := "/roms/nes/gamelist.xml"
	user := testHome + "/.emulationstation/gamelists/nes/gamelist.xml"
	fallback := "/etc/emulationstation/gamelists/nes/gamelist.xml"

	// nothing exists: system-wide fallback
	got, err := GamelistPath(fsys, "/roms/nes", "nes", false)
	require.NoError(t, err)
	assert.Equal(t, fallback, got)

	// user copy beats the fallback
	require.NoError(t, afero.WriteFile(fsys, user, []byte("<gameList/>"), 0o644))
	got, err = GamelistPath(fsys, "/roms/nes", "nes", false)
	require.NoError(t, err)
	assert.Equal(t, user, got)

	// co-located copy has read priority
	require.NoError(t, afero.WriteFile(fsys, local, []byte("<gameList/>"), 0o644))
	got, err = GamelistPath(fsys, "/roms/nes", "nes", false)
	require.NoError(t, err)
	assert.Equal(t, local, got)
}

func TestGamelistPathForWriteCreatesParents(t *testing.T) {
	fsys := setupHome(t)

	got, err := GamelistPath(fsys, "/roms/nes", "nes", true)
	require.NoError(t, err)
	assert.Equal(t, testHome+"/.emulationstation/gamelists/nes/gamelist.xml", got)

	dirExists, err := afero.DirExists(fsys, testHome+"/.emulationstation/gamelists/nes")
	require.NoError(t, err)
	assert.True(t, dirExists)
}

func TestGamelistPathForWriteIgnoresCoLocated(t *testing.T) {
	fsys := setupHome(t)

	require.NoError(t, afero.WriteFile(fsys,
		"/roms/nes/gamelist.xml", []byte("<gameList/>"), 0o644))

	got, err := GamelistPath(fsys, "/roms/nes", "nes", true)
	require.NoError(t, err)
	assert.Equal(t, testHome+"/.emulationstation/gamelists/nes/gamelist.xml", got)
}

func TestThemePathFallbackOrder(t *testing.T) {
	fsys := setupHome(t)
	const themeSet = "/themes/carbon"

	// final fallback needs no existence check
	assert.Equal(t, themeSet+"/theme.xml",
		ThemePath(fsys, "/roms/nes", "nes", themeSet))

	require.NoError(t, afero.WriteFile(fsys,
		themeSet+"/nes/theme.xml", []byte("<theme/>"), 0o644))
	assert.Equal(t, themeSet+"/nes/theme.xml",
		ThemePath(fsys, "/roms/nes", "nes", themeSet))

	require.NoError(t, afero.WriteFile(fsys,
		"/roms/nes/theme.xml", []byte("<theme/>"), 0o644))
	assert.Equal(t, "/roms/nes/theme.xml",
		ThemePath(fsys, "/roms/nes", "nes", themeSet))
}
