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

package platformid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupKnownToken(t *testing.T) {
	t.Parallel()

	assert.Equal(t, NES, Lookup("nes"))
	assert.Equal(t, SNES, Lookup("snes"))
	assert.Equal(t, Arcade, Lookup("arcade"))
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	assert.Equal(t, NES, Lookup("NES"))
	assert.Equal(t, MegaDrive, Lookup("MegaDrive"))
	assert.Equal(t, Ignore, Lookup("IGNORE"))
}

func TestLookupTrimsWhitespace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, GameBoy, Lookup(" gb "))
}

func TestLookupUnknownToken(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Unknown, Lookup("xyz"))
	assert.Equal(t, Unknown, Lookup(""))
	assert.Equal(t, Unknown, Lookup("nes2"))
}

func TestIgnoreIsResolvable(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Ignore, Lookup("ignore"))
	assert.NotEqual(t, Unknown, Ignore)
}
