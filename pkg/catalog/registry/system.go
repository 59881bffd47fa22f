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

package registry

import (
	"math/rand/v2"

	"github.com/ZaparooProject/es-catalog/pkg/catalog/filenode"
	"github.com/ZaparooProject/es-catalog/pkg/catalog/filterindex"
	"github.com/ZaparooProject/es-catalog/pkg/catalog/gamelist"
	"github.com/ZaparooProject/es-catalog/pkg/catalog/paths"
	"github.com/ZaparooProject/es-catalog/pkg/catalog/platformid"
	"github.com/ZaparooProject/es-catalog/pkg/catalog/scanner"
	"github.com/ZaparooProject/es-catalog/pkg/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// nonGameSystemName is the one reserved system name excluded from
// game-system operations like random selection.
const nonGameSystemName = "retropie"

// SystemEnvironment is the immutable per-system runtime configuration
// derived from its config record.
type SystemEnvironment struct {
	StartPath     string
	LaunchCommand string
	Extensions    []string
	Platforms     []platformid.ID
}

// System owns one configured platform's game tree, environment and
// filter index for its whole lifetime.
type System struct {
	fsys         afero.Fs
	cfg          *config.Instance
	env          *SystemEnvironment
	root         *filenode.FileNode
	filter       *filterindex.Index
	name         string
	fullName     string
	themeFolder  string
	isCollection bool
	isGameSystem bool
}

// NewSystem constructs a system, scanning its start path and merging
// its gamelist sidecar unless global settings say otherwise. Collection
// systems get a bare root only; their trees are layered on afterwards
// by the collection loader.
func NewSystem(
	fsys afero.Fs,
	cfg *config.Instance,
	name, fullName, themeFolder string,
	env *SystemEnvironment,
	isCollection bool,
) *System {
	s := &System{
		fsys:         fsys,
		cfg:          cfg,
		name:         name,
		fullName:     fullName,
		themeFolder:  themeFolder,
		env:          env,
		filter:       filterindex.New(),
		isCollection: isCollection,
		isGameSystem: name != nonGameSystemName,
	}

	if isCollection {
		s.root = filenode.New(filenode.Folder, name)
		return s
	}

	s.root = filenode.New(filenode.Folder, env.StartPath)
	s.root.Metadata().Seed("name", fullName)

	if !cfg.ParseGamelistOnly() {
		scanner.New(fsys, env.Extensions, cfg.ShowHiddenFiles()).Populate(s.root)
	}

	if !cfg.IgnoreGamelist() {
		if err := gamelist.NewStore(fsys).Merge(s.root, name); err != nil {
			log.Error().
				Err(err).
				Str("system", name).
				Msg("gamelist merge failed, continuing with scan data")
		}
	}

	s.root.Sort(filenode.SortTypes[0])
	return s
}

func (s *System) Name() string                    { return s.name }
func (s *System) FullName() string                { return s.fullName }
func (s *System) ThemeFolder() string             { return s.themeFolder }
func (s *System) Environment() *SystemEnvironment { return s.env }
func (s *System) Root() *filenode.FileNode        { return s.root }
func (s *System) FilterIndex() *filterindex.Index { return s.filter }
func (s *System) IsCollection() bool              { return s.isCollection }

// IsGameSystem reports whether the system takes part in game-system
// operations. False only for the reserved non-game system.
func (s *System) IsGameSystem() bool { return s.isGameSystem }

// GameCount counts every game in the system's tree.
func (s *System) GameCount() int {
	return s.root.CountGames(nil)
}

// DisplayedGameCount counts games passing the active filter. Always at
// most GameCount; the two are distinct and never conflated.
func (s *System) DisplayedGameCount() int {
	return s.root.CountGames(s.filter.ShowFile)
}

// RandomGame picks uniformly from the displayed games, nil when the
// displayed set is empty.
func (s *System) RandomGame(rng *rand.Rand) *filenode.FileNode {
	return filenode.PickRandom(s.root.GamesRecursive(s.filter.ShowFile), rng)
}

// GamelistPath resolves the system's sidecar location.
func (s *System) GamelistPath(forWrite bool) (string, error) {
	return paths.GamelistPath(s.fsys, s.root.Path(), s.name, forWrite)
}

// HasGamelist reports whether a readable sidecar exists anywhere in the
// lookup order.
func (s *System) HasGamelist() bool {
	path, err := s.GamelistPath(false)
	return err == nil && paths.Exists(s.fsys, path)
}

// ThemePath resolves the system's theme file against the current theme
// set. The returned path is not guaranteed to exist.
func (s *System) ThemePath() string {
	return paths.ThemePath(s.fsys, s.root.Path(), s.themeFolder, s.cfg.CurrentThemeSet())
}

// save flushes changed metadata back to the sidecar write target.
func (s *System) save() error {
	return gamelist.NewStore(s.fsys).Save(s.root, s.name)
}
