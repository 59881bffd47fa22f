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

// Package platformid enumerates the scraping/target platform tags a
// system can declare in its config record. These are distinct from a
// system's internal name: a system called "mame-libretro" may still
// declare the "arcade" platform.
package platformid

import "strings"

// ID is a platform identifier token.
type ID string

const (
	// Unknown is the zero value for unrecognized tokens.
	Unknown ID = ""
	// Ignore is the reserved token that clears all other platform tags
	// for a system.
	Ignore ID = "ignore"
)

const (
	ThreeDO          ID = "3do"
	Amiga            ID = "amiga"
	AmstradCPC       ID = "amstradcpc"
	AppleII          ID = "apple2"
	Arcade           ID = "arcade"
	Atari800         ID = "atari800"
	Atari2600        ID = "atari2600"
	Atari5200        ID = "atari5200"
	Atari7800        ID = "atari7800"
	AtariLynx        ID = "atarilynx"
	AtariST          ID = "atarist"
	AtariJaguar      ID = "atarijaguar"
	AtariJaguarCD    ID = "atarijaguarcd"
	AtariXE          ID = "atarixe"
	Colecovision     ID = "colecovision"
	Commodore64      ID = "c64"
	Intellivision    ID = "intellivision"
	MacOS            ID = "macintosh"
	Xbox             ID = "xbox"
	Xbox360          ID = "xbox360"
	MSX              ID = "msx"
	NeoGeo           ID = "neogeo"
	NeoGeoPocket     ID = "ngp"
	NeoGeoPocketCol  ID = "ngpc"
	N3DS             ID = "n3ds"
	N64              ID = "n64"
	NDS              ID = "nds"
	NES              ID = "nes"
	GameBoy          ID = "gb"
	GameBoyAdvance   ID = "gba"
	GameBoyColor     ID = "gbc"
	GameCube         ID = "gc"
	Wii              ID = "wii"
	WiiU             ID = "wiiu"
	PC               ID = "pc"
	Sega32X          ID = "sega32x"
	SegaCD           ID = "segacd"
	Dreamcast        ID = "dreamcast"
	GameGear         ID = "gamegear"
	Genesis          ID = "genesis"
	MasterSystem     ID = "mastersystem"
	MegaDrive        ID = "megadrive"
	SegaSaturn       ID = "saturn"
	PlayStation      ID = "psx"
	PlayStation2     ID = "ps2"
	PlayStation3     ID = "ps3"
	PlayStation4     ID = "ps4"
	PSVita           ID = "psvita"
	PSP              ID = "psp"
	SNES             ID = "snes"
	PCEngine         ID = "pcengine"
	WonderSwan       ID = "wonderswan"
	WonderSwanColor  ID = "wonderswancolor"
	ZXSpectrum       ID = "zxspectrum"
	Videopac         ID = "videopac"
	Vectrex          ID = "vectrex"
	TRS80            ID = "trs-80"
	ZMachine         ID = "zmachine"
)

// knownIDs is every resolvable token, Ignore included.
var knownIDs = map[ID]struct{}{}

func init() {
	for _, id := range []ID{
		Ignore,
		ThreeDO, Amiga, AmstradCPC, AppleII, Arcade,
		Atari800, Atari2600, Atari5200, Atari7800, AtariLynx, AtariST,
		AtariJaguar, AtariJaguarCD, AtariXE,
		Colecovision, Commodore64, Intellivision, MacOS,
		Xbox, Xbox360, MSX,
		NeoGeo, NeoGeoPocket, NeoGeoPocketCol,
		N3DS, N64, NDS, NES,
		GameBoy, GameBoyAdvance, GameBoyColor, GameCube, Wii, WiiU,
		PC,
		Sega32X, SegaCD, Dreamcast, GameGear, Genesis, MasterSystem,
		MegaDrive, SegaSaturn,
		PlayStation, PlayStation2, PlayStation3, PlayStation4,
		PSVita, PSP,
		SNES, PCEngine,
		WonderSwan, WonderSwanColor, ZXSpectrum, Videopac, Vectrex,
		TRS80, ZMachine,
	} {
		knownIDs[id] = struct{}{}
	}
}

// Lookup resolves a raw token to a platform ID. Matching is
// case-insensitive; unrecognized tokens resolve to Unknown.
func Lookup(token string) ID {
	id := ID(strings.ToLower(strings.TrimSpace(token)))
	if _, ok := knownIDs[id]; ok {
		return id
	}
	return Unknown
}
