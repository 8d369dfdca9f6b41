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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/musicvis/gfx"
	"github.com/jetsetilly/musicvis/gfx/gfxtest"
	"github.com/jetsetilly/musicvis/test"
)

func TestLaunchHelp(t *testing.T) {
	var out strings.Builder
	test.ExpectEquality(t, launch([]string{"-help"}, &out, gfxtest.NewWindow().Creator()), exitOK)
	test.ExpectSuccess(t, strings.Contains(out.String(), "RUN"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "HEADLESS"))
}

func TestLaunchParseError(t *testing.T) {
	var out strings.Builder
	test.ExpectEquality(t, launch([]string{"-nosuchflag"}, &out, gfxtest.NewWindow().Creator()), exitParseError)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "* error: "))
}

func TestLaunchBadSize(t *testing.T) {
	var out strings.Builder
	test.ExpectEquality(t, launch([]string{"-size", "0", "HEADLESS"}, &out, gfxtest.NewWindow().Creator()), exitRunError)
	test.ExpectSuccess(t, strings.Contains(out.String(), "* error in HEADLESS mode"))
}

func TestLaunchExportNotHeadless(t *testing.T) {
	var out strings.Builder
	test.ExpectEquality(t, launch([]string{"-export", t.TempDir(), "RUN"}, &out, gfxtest.NewWindow().Creator()), exitRunError)
	test.ExpectSuccess(t, strings.Contains(out.String(), "HEADLESS"))
}

func TestPreferences(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "musicvis.yaml")
	err := os.WriteFile(cfg, []byte("gfx:\n  compositeScale: 1\naudio:\n  level: 0.5\n"), 0o644)
	test.DemandSuccess(t, err)

	_, gfxPrefs, level, err := preferences(options{
		config: cfg,
		prefs:  "gfx.vsync::false",
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, gfxPrefs.CompositeScale.Get().(int), 1)
	test.ExpectEquality(t, gfxPrefs.VSync.Get().(bool), false)
	test.ExpectEquality(t, level.Get().(float64), 0.5)
}

func TestPreferencesUnknownKey(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "musicvis.yaml")
	err := os.WriteFile(cfg, []byte("gfx:\n  nosuchkey: 1\n"), 0o644)
	test.DemandSuccess(t, err)

	_, _, _, err = preferences(options{config: cfg})
	test.ExpectFailure(t, err)
}

func TestPreferencesMissingFile(t *testing.T) {
	_, _, _, err := preferences(options{config: filepath.Join(t.TempDir(), "missing.yaml")})
	test.ExpectFailure(t, err)
}

func TestLaunchBadProfile(t *testing.T) {
	var out strings.Builder
	test.ExpectEquality(t, launch([]string{"-profile", "trace", "HEADLESS"}, &out, gfxtest.NewWindow().Creator()), exitParseError)
	test.ExpectSuccess(t, strings.Contains(out.String(), "unknown profile type"))
}

func TestPreferencesCommandLineBeatsConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "musicvis.yaml")
	err := os.WriteFile(cfg, []byte("gfx:\n  vsync: true\n  compositeScale: 3\n"), 0o644)
	test.DemandSuccess(t, err)

	_, gfxPrefs, _, err := preferences(options{
		config: cfg,
		prefs:  "gfx.vsync::false",
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, gfxPrefs.VSync.Get().(bool), false)
	test.ExpectEquality(t, gfxPrefs.CompositeScale.Get().(int), 3)
}

func TestLaunchHeadless(t *testing.T) {
	t.Chdir(t.TempDir())

	win := gfxtest.NewWindow()

	var out strings.Builder
	code := launch([]string{"-size", "64", "-rate", "0", "-frames", "5", "HEADLESS"}, &out, win.Creator())
	test.ExpectEquality(t, code, exitOK)
	test.ExpectSuccess(t, win.Spec.Hidden)
	test.ExpectEquality(t, win.Spec.Size, int32(64))
	test.ExpectEquality(t, win.Swaps, 0)
	test.ExpectSuccess(t, win.Destroyed)
}

func TestLaunchShaderError(t *testing.T) {
	t.Chdir(t.TempDir())

	win := gfxtest.NewWindow()
	win.Ctx.CompileFailure[gfx.StageFragment] = "0:3(1): error: syntax error"

	var out strings.Builder
	code := launch([]string{"-size", "64", "-rate", "0", "-frames", "1", "HEADLESS"}, &out, win.Creator())
	test.ExpectEquality(t, code, exitShaderError)

	// the shader log is printed before the error line
	s := out.String()
	logAt := strings.Index(s, "0:3(1): error: syntax error\n")
	errAt := strings.Index(s, "* error in HEADLESS mode")
	test.DemandSuccess(t, logAt >= 0)
	test.DemandSuccess(t, errAt >= 0)
	test.ExpectSuccess(t, logAt < errAt)
}
