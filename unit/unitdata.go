/*
 * Copyright (C) 2026 The Quadlet-Go Authors
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License version 3 as
 * published by the Free Software Foundation.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

package unit

import "strings"

type dataEntry struct {
	Key   string
	Value Value
}

// UnitData is an ordered multimap from section name to an ordered
// multimap of key to Value. Section insertion order and per-section entry
// order are both preserved; repeated occurrences of the same section name
// in the source document are merged into one logical, ordered sequence of
// entries.
type UnitData struct {
	// Path is the source file this document was parsed from, if any. It
	// is consulted by translators resolving relative paths.
	Path string

	order []string
	seen  map[string]bool
	data  map[string][]dataEntry
}

// New returns an empty UnitData.
func New() *UnitData {
	return &UnitData{
		seen: map[string]bool{},
		data: map[string][]dataEntry{},
	}
}

// Clone makes a deep copy of u, the starting point for every translator's
// common preamble.
func (u *UnitData) Clone() *UnitData {
	c := New()
	c.Path = u.Path
	for _, section := range u.order {
		entries := make([]dataEntry, len(u.data[section]))
		copy(entries, u.data[section])
		c.order = append(c.order, section)
		c.seen[section] = true
		c.data[section] = entries
	}
	return c
}

func (u *UnitData) ensureSection(section string) {
	if !u.seen[section] {
		u.seen[section] = true
		u.order = append(u.order, section)
	}
}

// HasSection reports whether section currently exists (it may have zero
// entries after RemoveEntries calls; RemoveSection makes it absent).
func (u *UnitData) HasSection(section string) bool {
	return u.seen[section]
}

// HasKey reports whether key exists at least once in section.
func (u *UnitData) HasKey(section, key string) bool {
	for _, e := range u.data[section] {
		if e.Key == key {
			return true
		}
	}
	return false
}

// Sections returns section names in first-seen order.
func (u *UnitData) Sections() []string {
	out := make([]string, len(u.order))
	copy(out, u.order)
	return out
}

// Keys returns the distinct keys used in section, in first-seen order.
// Translators use this to validate an input section against a per-kind
// allowlist.
func (u *UnitData) Keys(section string) []string {
	seen := map[string]bool{}
	var out []string
	for _, e := range u.data[section] {
		if !seen[e.Key] {
			seen[e.Key] = true
			out = append(out, e.Key)
		}
	}
	return out
}

// Append adds a new entry to the end of section, creating it if absent.
func (u *UnitData) Append(section, key, raw string) {
	u.ensureSection(section)
	u.data[section] = append(u.data[section], dataEntry{Key: key, Value: NewValue(raw)})
}

// Prepend inserts a new entry as the first entry of section, preserving
// the relative order of the existing entries.
func (u *UnitData) Prepend(section, key, raw string) {
	u.ensureSection(section)
	existing := u.data[section]
	merged := make([]dataEntry, 0, len(existing)+1)
	merged = append(merged, dataEntry{Key: key, Value: NewValue(raw)})
	merged = append(merged, existing...)
	u.data[section] = merged
}

// Set replaces the last occurrence of key in section with raw, appending
// a new entry if key is absent.
func (u *UnitData) Set(section, key, raw string) {
	u.ensureSection(section)
	entries := u.data[section]
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Key == key {
			entries[i].Value = NewValue(raw)
			return
		}
	}
	u.Append(section, key, raw)
}

// RemoveEntries deletes every occurrence of key in section.
func (u *UnitData) RemoveEntries(section, key string) {
	entries := u.data[section]
	out := entries[:0]
	for _, e := range entries {
		if e.Key != key {
			out = append(out, e)
		}
	}
	u.data[section] = out
}

// RemoveSection deletes section entirely.
func (u *UnitData) RemoveSection(section string) {
	delete(u.data, section)
	delete(u.seen, section)
	for i, s := range u.order {
		if s == section {
			u.order = append(u.order[:i], u.order[i+1:]...)
			break
		}
	}
}

// RenameSection concatenates all entries of from (in document order)
// after any entries already present in to, and removes from.
func (u *UnitData) RenameSection(from, to string) {
	if !u.seen[from] {
		return
	}
	fromEntries := u.data[from]
	u.ensureSection(to)
	u.data[to] = append(u.data[to], fromEntries...)
	u.RemoveSection(from)
}

// MergeFrom appends every (section, key, value) triple from other, in
// document order, to u.
func (u *UnitData) MergeFrom(other *UnitData) {
	for _, section := range other.order {
		for _, e := range other.data[section] {
			u.Append(section, e.Key, e.Value.Raw)
		}
	}
}

// LookupLast returns the unquoted value of the last occurrence of key in
// section.
func (u *UnitData) LookupLast(section, key string) (string, bool) {
	entries := u.data[section]
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Key == key {
			s, err := entries[i].Value.Unquoted()
			if err != nil {
				s = entries[i].Value.Raw
			}
			return s, true
		}
	}
	return "", false
}

// LookupAllValues returns every value assigned to (section, key) in
// document order, honoring reset semantics: an empty raw value discards
// everything accumulated so far and the scan continues from there.
func (u *UnitData) LookupAllValues(section, key string) []Value {
	var out []Value
	for _, e := range u.data[section] {
		if e.Key != key {
			continue
		}
		if e.Value.IsEmpty() {
			out = out[:0]
			continue
		}
		out = append(out, e.Value)
	}
	return out
}

// LookupAll unquotes every value returned by LookupAllValues without
// word-splitting, unlike LookupAllArgs/LookupAllStrv/LookupAllKeyVal.
func (u *UnitData) LookupAll(section, key string) ([]string, error) {
	var out []string
	for _, v := range u.LookupAllValues(section, key) {
		s, err := v.Unquoted()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// LookupAllArgs word-splits and concatenates every value returned by
// LookupAllValues.
func (u *UnitData) LookupAllArgs(section, key string) ([]string, error) {
	var out []string
	for _, v := range u.LookupAllValues(section, key) {
		words, err := v.Args()
		if err != nil {
			return nil, err
		}
		out = append(out, words...)
	}
	return out, nil
}

// LookupAllStrv strv-splits and concatenates every value returned by
// LookupAllValues.
func (u *UnitData) LookupAllStrv(section, key string) []string {
	var out []string
	for _, v := range u.LookupAllValues(section, key) {
		out = append(out, v.Strv()...)
	}
	return out
}

// LookupAllKeyVal word-splits every value returned by LookupAllValues,
// splits each word at its first '=', and builds a mapping from left to
// right; a word with no '=' maps to the empty string.
func (u *UnitData) LookupAllKeyVal(section, key string) map[string]string {
	out := map[string]string{}
	for _, v := range u.LookupAllValues(section, key) {
		words, err := v.Args()
		if err != nil {
			continue
		}
		for _, w := range words {
			if idx := strings.IndexByte(w, '='); idx >= 0 {
				out[w[:idx]] = w[idx+1:]
			} else {
				out[w] = ""
			}
		}
	}
	return out
}

// LookupBool returns the boolean view of the last occurrence of key in
// section; ok is false when the key is absent.
func (u *UnitData) LookupBool(section, key string) (value, ok bool) {
	entries := u.data[section]
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Key == key {
			return entries[i].Value.Bool(), true
		}
	}
	return false, false
}

// String serializes u back to INI-family text: "[Section]\n" followed by
// "Key=Raw\n" for every entry, with a blank line between sections.
func (u *UnitData) String() string {
	var b strings.Builder
	for i, section := range u.order {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("[")
		b.WriteString(section)
		b.WriteString("]\n")
		for _, e := range u.data[section] {
			b.WriteString(e.Key)
			b.WriteString("=")
			b.WriteString(e.Value.Raw)
			b.WriteString("\n")
		}
	}
	return b.String()
}
