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

package gfx_test

import (
	"testing"

	"github.com/jetsetilly/musicvis/gfx"
	"github.com/jetsetilly/musicvis/prefs"
	"github.com/jetsetilly/musicvis/test"
)

func TestPreferencesDefaults(t *testing.T) {
	p, err := gfx.NewPreferences(nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.CompositeScale.Get().(int), 2)
	test.ExpectEquality(t, p.VSync.Get().(bool), true)
	test.ExpectEquality(t, p.ExitOnDisconnect.Get().(bool), true)
	test.ExpectEquality(t, p.Title.String(), "Music Visualizer")
}

func TestPreferencesCompositeScale(t *testing.T) {
	p, err := gfx.NewPreferences(nil)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, p.CompositeScale.Set(0))
	test.ExpectEquality(t, p.CompositeScale.Get().(int), 2)
	test.ExpectSuccess(t, p.CompositeScale.Set(1))
	test.ExpectEquality(t, p.CompositeScale.Get().(int), 1)

	test.ExpectSuccess(t, p.CompositeScale.Set(gfx.MaxCompositeScale))
	test.ExpectFailure(t, p.CompositeScale.Set(gfx.MaxCompositeScale+1))
	test.ExpectFailure(t, p.CompositeScale.Set("4294967297"))
	test.ExpectEquality(t, p.CompositeScale.Get().(int), gfx.MaxCompositeScale)
}

func TestPreferencesCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("gfx.compositeScale::1; gfx.exitOnDisconnect::false")
	defer prefs.PopCommandLineStack()

	p, err := gfx.NewPreferences(prefs.NewGroup())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.CompositeScale.Get().(int), 1)
	test.ExpectEquality(t, p.ExitOnDisconnect.Get().(bool), false)
	test.ExpectEquality(t, p.VSync.Get().(bool), true)
}
