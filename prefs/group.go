// This file is part of musicvis.
//
// musicvis is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// musicvis is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with musicvis.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Group is a named collection of preferences. It replaces the on-disk
// preferences of other programs: nothing in a Group outlives the process.
type Group struct {
	entries map[string]pref

	// keys that were set from the command line stack
	commandLine map[string]bool
}

// NewGroup is the preferred method of initialisation for the Group type.
func NewGroup() *Group {
	return &Group{
		entries:     make(map[string]pref),
		commandLine: make(map[string]bool),
	}
}

// Add preference value to the group under key. If the command line stack
// contains a value for the key it is applied immediately.
func (g *Group) Add(key string, p pref) error {
	if _, ok := g.entries[key]; ok {
		return fmt.Errorf("prefs: duplicate key (%s)", key)
	}
	g.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return fmt.Errorf("prefs: %s: %w", key, err)
		}
		g.commandLine[key] = true
	}

	return nil
}

// Set the value of the preference with the specified key.
func (g *Group) Set(key string, v Value) error {
	p, ok := g.entries[key]
	if !ok {
		return fmt.Errorf("prefs: unknown preference (%s)", key)
	}
	if err := p.Set(v); err != nil {
		return fmt.Errorf("prefs: %s: %w", key, err)
	}
	return nil
}

// Get the value of the preference with the specified key.
func (g *Group) Get(key string) (Value, bool) {
	p, ok := g.entries[key]
	if !ok {
		return nil, false
	}
	return p.Get(), true
}

func (g *Group) keys() []string {
	keys := make([]string, 0, len(g.entries))
	for k := range g.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String returns every preference in the group, one per line and sorted by
// key.
func (g *Group) String() string {
	s := strings.Builder{}
	for _, k := range g.keys() {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, g.entries[k].String()))
	}
	return s.String()
}

// LoadYAML sets preferences from a YAML document. Nested maps are flattened
// into dotted keys. Keys that are not in the group are an error, as are values
// that cannot be converted to the preference type. Every valid key is applied
// even if another key fails.
//
// Keys that were set from the command line stack keep the command line value.
func (g *Group) LoadYAML(r io.Reader) error {
	var doc map[string]any
	err := yaml.NewDecoder(r).Decode(&doc)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("prefs: %w", err)
	}

	flat := make(map[string]any)
	flatten("", doc, flat)

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs []error
	for _, k := range keys {
		if g.commandLine[k] {
			continue
		}
		if err := g.Set(k, flat[k]); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func flatten(prefix string, m map[string]any, flat map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := v.(map[string]any); ok {
			flatten(key, sub, flat)
			continue
		}
		flat[key] = v
	}
}
