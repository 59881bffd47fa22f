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

// Package config holds the application settings document and the global
// toggles the catalog core reads: gamelist parsing/saving behavior,
// hidden file visibility and the current theme set.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZaparooProject/es-catalog/pkg/helpers/syncutil"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	SchemaVersion = 1
	CfgEnv        = "ES_CATALOG_CFG"
	CfgFile       = "catalog.toml"
	LogFile       = "catalog.log"
)

type Values struct {
	Themes       Themes    `toml:"themes,omitempty"`
	UI           UI        `toml:"ui,omitempty"`
	Gamelists    Gamelists `toml:"gamelists,omitempty"`
	ConfigSchema int       `toml:"config_schema"`
	DebugLogging bool      `toml:"debug_logging"`
}

type UI struct {
	ShowHiddenFiles bool `toml:"show_hidden_files"`
}

type Gamelists struct {
	// ParseOnly skips disk scanning and builds trees from sidecars alone.
	ParseOnly bool `toml:"parse_only"`
	// Ignore disables sidecar reading and writing entirely.
	Ignore bool `toml:"ignore"`
	// SaveOnExit flushes changed metadata back to sidecars at teardown.
	SaveOnExit bool `toml:"save_on_exit"`
}

type Themes struct {
	// CurrentSet is the root directory of the active theme set.
	CurrentSet string `toml:"current_set,omitempty"`
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	Gamelists: Gamelists{
		SaveOnExit: true,
	},
}

type Instance struct {
	cfgPath  string
	vals     Values
	defaults Values
	mu       syncutil.RWMutex
}

func NewConfig(configDir string, defaults Values) (*Instance, error) {
	cfgPath := os.Getenv(CfgEnv)
	if cfgPath == "" {
		cfgPath = filepath.Join(configDir, CfgFile)
	}

	cfg := Instance{
		mu:       syncutil.RWMutex{},
		cfgPath:  cfgPath,
		vals:     defaults,
		defaults: defaults,
	}

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		log.Info().Msg("saving new default config to disk")

		err := os.MkdirAll(filepath.Dir(cfgPath), 0o750)
		if err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		err = cfg.Save()
		if err != nil {
			return nil, err
		}
	}

	err := cfg.Load()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	data, err := os.ReadFile(c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults, then unmarshal file values on top.
	// This ensures fields not present in the file retain their default values.
	newVals := c.defaults
	err = toml.Unmarshal(data, &newVals)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"schema version mismatch: got %d, expecting %d",
			newVals.ConfigSchema,
			SchemaVersion,
		)
		return errors.New("schema version mismatch")
	}

	c.vals = newVals
	return nil
}

func (c *Instance) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	c.vals.ConfigSchema = SchemaVersion

	data, err := toml.Marshal(&c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.cfgPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (c *Instance) ShowHiddenFiles() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.UI.ShowHiddenFiles
}

func (c *Instance) SetShowHiddenFiles(show bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.UI.ShowHiddenFiles = show
}

func (c *Instance) ParseGamelistOnly() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Gamelists.ParseOnly
}

func (c *Instance) SetParseGamelistOnly(parseOnly bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Gamelists.ParseOnly = parseOnly
}

func (c *Instance) IgnoreGamelist() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Gamelists.Ignore
}

func (c *Instance) SetIgnoreGamelist(ignore bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Gamelists.Ignore = ignore
}

func (c *Instance) SaveGamelistsOnExit() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Gamelists.SaveOnExit
}

func (c *Instance) SetSaveGamelistsOnExit(save bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Gamelists.SaveOnExit = save
}

func (c *Instance) CurrentThemeSet() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Themes.CurrentSet
}

func (c *Instance) SetCurrentThemeSet(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Themes.CurrentSet = path
}

func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

func (c *Instance) SetDebugLogging(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.DebugLogging = enabled
	if enabled {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
