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
	"encoding/xml"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ZaparooProject/es-catalog/pkg/catalog/paths"
	"github.com/ZaparooProject/es-catalog/pkg/catalog/platformid"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// systemEntry is one <system> record from es_systems.cfg.
type systemEntry struct {
	Name      string `validate:"required" xml:"name"`
	FullName  string `xml:"fullname"`
	Path      string `validate:"required" xml:"path"`
	Extension string `validate:"required" xml:"extension"`
	Command   string `validate:"required" xml:"command"`
	Platform  string `xml:"platform"`
	Theme     string `xml:"theme"`
}

type systemListDoc struct {
	XMLName xml.Name      `xml:"systemList"`
	Systems []systemEntry `xml:"system"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func parseSystemsConfig(data []byte) (*systemListDoc, error) {
	var doc systemListDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse systems config: %w", err)
	}
	return &doc, nil
}

// readList splits a whitespace/comma-delimited token list.
func readList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case ' ', '\t', '\r', '\n', ',':
			return true
		default:
			return false
		}
	})
}

// resolvePlatforms maps raw platform tokens to known IDs. The reserved
// "ignore" token clears everything collected so far and wins outright;
// unrecognized tokens warn and are excluded.
func resolvePlatforms(systemName, rawList string) []platformid.ID {
	var ids []platformid.ID
	for _, token := range readList(rawList) {
		id := platformid.Lookup(token)

		if id == platformid.Ignore {
			// when platform is ignore, do not allow other platforms
			return []platformid.ID{platformid.Ignore}
		}

		if id == platformid.Unknown {
			log.Warn().
				Str("system", systemName).
				Str("platform", token).
				Str("list", rawList).
				Msg("unknown platform for system")
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// normalizeStartPath converts separators to the generic form and
// expands a leading home marker.
func normalizeStartPath(p string) string {
	p = filepath.ToSlash(p)
	if strings.HasPrefix(p, "~") {
		p = paths.Home() + p[1:]
	}
	return filepath.FromSlash(p)
}

// environmentFromEntry builds a validated SystemEnvironment, or an
// error describing why the record is unusable.
func environmentFromEntry(entry systemEntry) (*SystemEnvironment, error) {
	if err := validate.Struct(entry); err != nil {
		return nil, fmt.Errorf("system record is missing required fields: %w", err)
	}

	extensions := readList(entry.Extension)
	if len(extensions) == 0 {
		return nil, fmt.Errorf("system %q has no recognizable extensions", entry.Name)
	}

	return &SystemEnvironment{
		StartPath:     normalizeStartPath(entry.Path),
		Extensions:    extensions,
		LaunchCommand: entry.Command,
		Platforms:     resolvePlatforms(entry.Name, entry.Platform),
	}, nil
}

// exampleConfig is written verbatim when no systems config exists, so
// the user has a commented template to start from.
const exampleConfig = `<!-- This is the systems configuration file.
All systems must be contained within the <systemList> tag.-->

<systemList>
	<!-- Here's an example system to get you started. -->
	<system>

		<!-- A short name, used internally. Traditionally lower-case. -->
		<name>nes</name>

		<!-- A "pretty" name, displayed in menus and such. -->
		<fullname>Nintendo Entertainment System</fullname>

		<!-- The path to start searching for ROMs in. '~' will be expanded to $HOME. -->
		<path>~/roms/nes</path>

		<!-- A list of extensions to search for, delimited by any of the whitespace characters (", \r\n\t").
		You MUST include the period at the start of the extension! It's also case sensitive. -->
		<extension>.nes .NES</extension>

		<!-- The shell command executed when a game is selected. A few special tags are replaced if found in a command:
		%ROM% is replaced by a bash-special-character-escaped absolute path to the ROM.
		%BASENAME% is replaced by the "base" name of the ROM. For example, "/foo/bar.rom" would have a basename of "bar". Useful for MAME.
		%ROM_RAW% is the raw, unescaped path to the ROM. -->
		<command>retroarch -L ~/cores/libretro-fceumm.so %ROM%</command>

		<!-- The platform to use when scraping. It's case sensitive, but everything is lowercase. This tag is optional.
		You can use multiple platforms too, delimited with any of the whitespace characters (", \r\n\t"), eg: "genesis, megadrive" -->
		<platform>nes</platform>

		<!-- The theme to load from the current theme set. This tag is optional.
		If not set, it will default to the value of <name>. -->
		<theme>nes</theme>
	</system>
</systemList>
`

func writeExampleConfig(fsys afero.Fs, path string) error {
	if err := fsys.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := afero.WriteFile(fsys, path, []byte(exampleConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write example config: %w", err)
	}
	log.Error().
		Str("path", path).
		Msg("example config written, go read it")
	return nil
}
