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

// Package registry parses the systems configuration document and owns
// the ordered list of loaded systems. The registry is an explicit
// object passed to callers; there is no process-wide singleton.
package registry

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/ZaparooProject/es-catalog/pkg/catalog/paths"
	"github.com/ZaparooProject/es-catalog/pkg/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

var (
	// ErrConfigMissing is returned by Load when no systems config file
	// exists. An example config is written first, so this is a
	// user-actionable condition rather than a crash.
	ErrConfigMissing = errors.New("systems config file does not exist")
	// ErrNoGameSystems is returned by RandomSystem when no loaded
	// system participates in game-system operations.
	ErrNoGameSystems = errors.New("no game systems registered")
)

// CollectionLoader layers virtual/grouping systems on top of the base
// systems after a successful load. It may read and write tree nodes of
// registered systems.
type CollectionLoader interface {
	LoadCollections(r *Registry) error
}

// Registry holds the ordered list of loaded systems. It is rebuilt
// wholesale on every Load; there is no partial reload.
type Registry struct {
	fsys        afero.Fs
	cfg         *config.Instance
	collections CollectionLoader
	systems     []*System
}

// New creates an empty registry over a filesystem and settings.
func New(fsys afero.Fs, cfg *config.Instance) *Registry {
	return &Registry{
		fsys: fsys,
		cfg:  cfg,
	}
}

// SetCollectionLoader installs the collaborator invoked after base
// systems load.
func (r *Registry) SetCollectionLoader(cl CollectionLoader) {
	r.collections = cl
}

// Load clears the registry and rebuilds it from the systems config
// document. Malformed records are skipped with a diagnostic; systems
// with no games are discarded. A missing config document writes an
// example file to the config write target and returns ErrConfigMissing.
func (r *Registry) Load() error {
	r.DeleteSystems()

	path := paths.ConfigPath(r.fsys, false)
	log.Info().Str("path", path).Msg("loading systems config file")

	if !paths.Exists(r.fsys, path) {
		log.Error().Msg("systems config file does not exist")
		if err := writeExampleConfig(r.fsys, paths.ConfigPath(r.fsys, true)); err != nil {
			log.Error().Err(err).Msg("failed to write example config")
		}
		return fmt.Errorf("%w: %s", ErrConfigMissing, path)
	}

	data, err := afero.ReadFile(r.fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read systems config: %w", err)
	}

	doc, err := parseSystemsConfig(data)
	if err != nil {
		return err
	}

	for _, entry := range doc.Systems {
		env, err := environmentFromEntry(entry)
		if err != nil {
			log.Error().
				Err(err).
				Str("system", entry.Name).
				Msg("skipping malformed system record")
			continue
		}

		themeFolder := entry.Theme
		if themeFolder == "" {
			themeFolder = entry.Name
		}

		system := NewSystem(r.fsys, r.cfg, entry.Name, entry.FullName, themeFolder, env, false)
		if system.GameCount() == 0 {
			log.Warn().
				Str("system", entry.Name).
				Msg("system has no games, ignoring it")
			continue
		}

		r.systems = append(r.systems, system)
	}

	if r.collections != nil {
		if err := r.collections.LoadCollections(r); err != nil {
			log.Error().Err(err).Msg("failed to load collection systems")
		}
	}

	return nil
}

// DeleteSystems tears down every registered system, flushing changed
// metadata to gamelist sidecars when persistence is enabled, and
// empties the registry. Safe to call before any Load.
func (r *Registry) DeleteSystems() {
	for _, s := range r.systems {
		if r.shouldSave(s) {
			if err := s.save(); err != nil {
				log.Error().
					Err(err).
					Str("system", s.Name()).
					Msg("failed to save gamelist on teardown")
			}
		}
	}
	r.systems = nil
}

func (r *Registry) shouldSave(s *System) bool {
	if s.isCollection {
		return false
	}
	if r.cfg.IgnoreGamelist() || !r.cfg.SaveGamelistsOnExit() {
		return false
	}
	return s.root != nil && s.root.AnyChanged()
}

// Systems returns the registered systems in load order. Callers must
// not modify the returned slice.
func (r *Registry) Systems() []*System {
	return r.systems
}

// Count returns the number of registered systems.
func (r *Registry) Count() int {
	return len(r.systems)
}

// ByName finds a registered system by its short name, or nil.
func (r *Registry) ByName(name string) *System {
	for _, s := range r.systems {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

// AddSystem registers an already constructed system, used by the
// collection loader to append virtual systems.
func (r *Registry) AddSystem(s *System) {
	r.systems = append(r.systems, s)
}

// RandomSystem picks uniformly among systems with the game-system flag
// set. Returns ErrNoGameSystems when no candidate exists rather than
// selecting past the end of the list.
func (r *Registry) RandomSystem(rng *rand.Rand) (*System, error) {
	var candidates []*System
	for _, s := range r.systems {
		if s.IsGameSystem() {
			candidates = append(candidates, s)
		}
	}
	if len(candidates) == 0 {
		return nil, ErrNoGameSystems
	}
	if rng != nil {
		return candidates[rng.IntN(len(candidates))], nil
	}
	return candidates[rand.IntN(len(candidates))], nil
}
