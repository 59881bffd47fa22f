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

package filenode

import (
	"sort"
	"strconv"
)

// MetaType describes how a metadata value should be interpreted by
// consumers such as the filter index and the sort table.
type MetaType int

const (
	MetaString MetaType = iota
	MetaMultiline
	MetaPath
	MetaRating
	MetaDate
	MetaTime
	MetaInt
	MetaBool
)

// MetaDecl declares a recognized metadata key, its type and its
// scan-only default. Statistic keys are runtime counters rather than
// user-editable fields.
type MetaDecl struct {
	Key       string
	Default   string
	Type      MetaType
	Statistic bool
}

// GameDecls is the closed set of recognized metadata keys for game
// entries. Keys not in this list are still stored and written back
// verbatim for forward compatibility.
var GameDecls = []MetaDecl{
	{Key: "name", Type: MetaString, Default: ""},
	{Key: "sortname", Type: MetaString, Default: ""},
	{Key: "desc", Type: MetaMultiline, Default: ""},
	{Key: "image", Type: MetaPath, Default: ""},
	{Key: "thumbnail", Type: MetaPath, Default: ""},
	{Key: "rating", Type: MetaRating, Default: "0"},
	{Key: "releasedate", Type: MetaDate, Default: ""},
	{Key: "developer", Type: MetaString, Default: "unknown"},
	{Key: "publisher", Type: MetaString, Default: "unknown"},
	{Key: "genre", Type: MetaString, Default: "unknown"},
	{Key: "players", Type: MetaInt, Default: "1"},
	{Key: "favorite", Type: MetaBool, Default: "false"},
	{Key: "hidden", Type: MetaBool, Default: "false"},
	{Key: "kidgame", Type: MetaBool, Default: "false"},
	{Key: "playcount", Type: MetaInt, Default: "0", Statistic: true},
	{Key: "lastplayed", Type: MetaTime, Default: "0", Statistic: true},
}

// FolderDecls is the recognized metadata key set for folder entries.
var FolderDecls = []MetaDecl{
	{Key: "name", Type: MetaString, Default: ""},
	{Key: "desc", Type: MetaMultiline, Default: ""},
	{Key: "image", Type: MetaPath, Default: ""},
	{Key: "thumbnail", Type: MetaPath, Default: ""},
}

// Metadata is an ordered string key/value bag attached to a FileNode.
// Recognized keys are seeded with defaults at creation; unrecognized
// keys pass through unmodified. Changes are tracked so that gamelist
// saving can skip untouched nodes.
type Metadata struct {
	vals     map[string]string
	defaults map[string]string
	decls    []MetaDecl
	changed  bool
}

func newMetadata(kind Kind) *Metadata {
	decls := GameDecls
	if kind == Folder {
		decls = FolderDecls
	}

	md := &Metadata{
		vals:     make(map[string]string, len(decls)),
		defaults: make(map[string]string, len(decls)),
		decls:    decls,
	}
	for _, decl := range decls {
		md.vals[decl.Key] = decl.Default
		md.defaults[decl.Key] = decl.Default
	}
	return md
}

// Get returns the value for a key, or an empty string if unset.
func (m *Metadata) Get(key string) string {
	return m.vals[key]
}

// GetBool interprets a value as a boolean, false if unset or invalid.
func (m *Metadata) GetBool(key string) bool {
	v, err := strconv.ParseBool(m.vals[key])
	if err != nil {
		return false
	}
	return v
}

// GetInt interprets a value as an integer, 0 if unset or invalid.
func (m *Metadata) GetInt(key string) int {
	v, err := strconv.Atoi(m.vals[key])
	if err != nil {
		return 0
	}
	return v
}

// GetFloat interprets a value as a float, 0 if unset or invalid.
func (m *Metadata) GetFloat(key string) float64 {
	v, err := strconv.ParseFloat(m.vals[key], 64)
	if err != nil {
		return 0
	}
	return v
}

// Set stores a value and marks the bag changed if the value differs
// from what was already stored. Unrecognized keys are stored as-is.
func (m *Metadata) Set(key, value string) {
	if cur, ok := m.vals[key]; ok && cur == value {
		return
	}
	m.vals[key] = value
	m.changed = true
}

// Seed stores a scan-time value without marking the bag changed, so
// defaults derived during tree construction don't force a sidecar
// write on exit. The value still counts as non-default for saving.
func (m *Metadata) Seed(key, value string) {
	m.vals[key] = value
}

// WasChanged reports whether any value was modified after creation.
func (m *Metadata) WasChanged() bool {
	return m.changed
}

// IsDefault reports whether every value still matches its scan-only
// default and no unrecognized keys were added.
func (m *Metadata) IsDefault() bool {
	if len(m.vals) != len(m.defaults) {
		return false
	}
	for k, v := range m.vals {
		if def, ok := m.defaults[k]; !ok || def != v {
			return false
		}
	}
	return true
}

// IsDefaultKey reports whether a single key still holds its default.
// Unrecognized keys are default only when empty.
func (m *Metadata) IsDefaultKey(key string) bool {
	return m.vals[key] == m.defaults[key]
}

// Keys returns all keys in a deterministic order: declared keys first,
// in declaration order, then any pass-through keys sorted.
func (m *Metadata) Keys() []string {
	keys := make([]string, 0, len(m.vals))
	declared := make(map[string]struct{}, len(m.decls))
	for _, decl := range m.decls {
		declared[decl.Key] = struct{}{}
		keys = append(keys, decl.Key)
	}

	extras := make([]string, 0)
	for k := range m.vals {
		if _, ok := declared[k]; !ok {
			extras = append(extras, k)
		}
	}
	sort.Strings(extras)

	return append(keys, extras...)
}
