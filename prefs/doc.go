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

// Package prefs provides typed preference values (Bool, Int, Float and String) that
// can be safely read from one goroutine while being set from another.
//
// Preference values are collected into a Group under a dotted key, for
// example "gfx.compositeScale". Preferences are never written to disk. A value
// can be overridden from the command line with the command line stack:
//
//	prefs.PushCommandLineStack("gfx.compositeScale::1; gfx.vsync::false")
//
// The overrides are applied when the preference is added to a Group. A Group
// can also be updated from a YAML document with LoadYAML(). Nested maps in the
// document are flattened into dotted keys:
//
//	gfx:
//	  compositeScale: 1
//	  vsync: false
package prefs
