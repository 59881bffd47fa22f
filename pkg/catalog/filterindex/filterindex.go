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

// Package filterindex provides the secondary filter structure consulted
// by displayed-game queries. Filters select on metadata keys; hidden
// entries are excluded by default regardless of active filters.
package filterindex

import (
	"sort"

	"github.com/ZaparooProject/es-catalog/pkg/catalog/filenode"
)

// Index holds the active metadata filters for one system.
type Index struct {
	filters       map[string]map[string]struct{}
	includeHidden bool
}

// New creates an index with no active filters.
func New() *Index {
	return &Index{
		filters: make(map[string]map[string]struct{}),
	}
}

// Set activates a filter: a game passes only if its value for the key
// is one of the given values. Replaces any existing filter on the key.
func (i *Index) Set(key string, values ...string) {
	allowed := make(map[string]struct{}, len(values))
	for _, v := range values {
		allowed[v] = struct{}{}
	}
	i.filters[key] = allowed
}

// Clear removes the filter on a single key.
func (i *Index) Clear(key string) {
	delete(i.filters, key)
}

// Reset removes every active filter and restores hidden exclusion.
func (i *Index) Reset() {
	i.filters = make(map[string]map[string]struct{})
	i.includeHidden = false
}

// SetIncludeHidden toggles whether hidden-flagged entries are shown.
func (i *Index) SetIncludeHidden(include bool) {
	i.includeHidden = include
}

// Active reports whether any filter would exclude entries.
func (i *Index) Active() bool {
	return len(i.filters) > 0 || !i.includeHidden
}

// ActiveKeys returns the keys with active filters, sorted.
func (i *Index) ActiveKeys() []string {
	keys := make([]string, 0, len(i.filters))
	for k := range i.filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ShowFile reports whether a node passes every active filter.
func (i *Index) ShowFile(n *filenode.FileNode) bool {
	if !i.includeHidden && n.Metadata().GetBool("hidden") {
		return false
	}
	for key, allowed := range i.filters {
		if _, ok := allowed[n.Metadata().Get(key)]; !ok {
			return false
		}
	}
	return true
}
