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

package gfx

import (
	"fmt"

	"github.com/jetsetilly/musicvis/prefs"
)

// Preferences for the render loop.
type Preferences struct {
	// the scale of the screen stage viewport relative to the size of the
	// visualizer's offscreen target
	CompositeScale prefs.Int

	// synchronise the windowed loop with the display
	VSync prefs.Bool

	// end the loop when the audio channel is disconnected. if false the loop
	// keeps running (and a window keeps responding to events) but nothing is
	// rendered
	ExitOnDisconnect prefs.Bool

	// title of the window
	Title prefs.String
}

func (p *Preferences) String() string {
	return fmt.Sprintf("composite scale: %s, vsync: %s, exit on disconnect: %s",
		p.CompositeScale.String(), p.VSync.String(), p.ExitOnDisconnect.String())
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. If the group is not nil then the preferences are added to
// it under the "gfx" prefix.
func NewPreferences(grp *prefs.Group) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.CompositeScale.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 || v.(int) > MaxCompositeScale {
			return fmt.Errorf("gfx: composite scale must be between 1 and %d", MaxCompositeScale)
		}
		return nil
	})

	if grp == nil {
		return p, nil
	}

	err := grp.Add("gfx.compositeScale", &p.CompositeScale)
	if err != nil {
		return nil, err
	}
	err = grp.Add("gfx.vsync", &p.VSync)
	if err != nil {
		return nil, err
	}
	err = grp.Add("gfx.exitOnDisconnect", &p.ExitOnDisconnect)
	if err != nil {
		return nil, err
	}
	err = grp.Add("gfx.title", &p.Title)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.CompositeScale.Set(2)
	_ = p.VSync.Set(true)
	_ = p.ExitOnDisconnect.Set(true)
	_ = p.Title.Set("Music Visualizer")
}
