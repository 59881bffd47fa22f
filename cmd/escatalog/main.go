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

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/ZaparooProject/es-catalog/pkg/catalog/registry"
	"github.com/ZaparooProject/es-catalog/pkg/config"
	"github.com/ZaparooProject/es-catalog/pkg/helpers"
	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	configDir := flag.String(
		"config-dir",
		filepath.Join(xdg.ConfigHome, "escatalog"),
		"path to the settings directory",
	)
	gamelistOnly := flag.Bool(
		"gamelist-only",
		false,
		"build trees from gamelist sidecars without scanning disk",
	)
	showHidden := flag.Bool(
		"show-hidden",
		false,
		"include dot-prefixed files when scanning",
	)
	noSave := flag.Bool(
		"no-save",
		false,
		"do not write gamelists back on exit",
	)
	randomGame := flag.Bool(
		"random-game",
		false,
		"print a random displayed game from a random game system",
	)
	verbose := flag.Bool("verbose", false, "log to stderr as well")
	flag.Parse()

	cfg, err := config.NewConfig(*configDir, config.BaseDefaults)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var extra []io.Writer
	if *verbose {
		extra = append(extra, zerolog.ConsoleWriter{Out: os.Stderr})
	}
	if err := helpers.InitLogging(*configDir, extra); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	if cfg.DebugLogging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if *gamelistOnly {
		cfg.SetParseGamelistOnly(true)
	}
	if *showHidden {
		cfg.SetShowHiddenFiles(true)
	}
	if *noSave {
		cfg.SetSaveGamelistsOnExit(false)
	}

	reg := registry.New(afero.NewOsFs(), cfg)
	defer reg.DeleteSystems()

	if err := reg.Load(); err != nil {
		if errors.Is(err, registry.ErrConfigMissing) {
			return fmt.Errorf(
				"no systems config found; an example was written, go edit it: %w", err)
		}
		return err
	}

	if reg.Count() == 0 {
		fmt.Println("no systems with games found")
		return nil
	}

	for _, s := range reg.Systems() {
		fmt.Printf("%-16s %-40s %5d games (%d shown)\n",
			s.Name(), s.FullName(), s.GameCount(), s.DisplayedGameCount())
	}

	if *randomGame {
		rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
		system, err := reg.RandomSystem(rng)
		if err != nil {
			return err
		}
		game := system.RandomGame(rng)
		if game == nil {
			fmt.Printf("%s has no displayed games\n", system.Name())
			return nil
		}
		fmt.Printf("random pick: [%s] %s (%s)\n",
			system.Name(), game.DisplayName(), game.Path())
	}

	log.Info().Int("systems", reg.Count()).Msg("catalog loaded")
	return nil
}
