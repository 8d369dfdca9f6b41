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

package modalflag_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/musicvis/modalflag"
	"github.com/jetsetilly/musicvis/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *testFlag, true)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "1")
	test.ExpectEquality(t, md.GetArg(1), "2")
	test.ExpectEquality(t, md.GetArg(2), "")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-size", "256"})
	md.AddSubModes("RUN", "HEADLESS")
	size := md.AddInt("size", 512, "size")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *size, 256)
	test.ExpectEquality(t, md.Mode(), "RUN")
}

func TestSubMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-size", "256", "headless", "extra"})
	md.AddSubModes("RUN", "HEADLESS")
	size := md.AddInt("size", 512, "size")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *size, 256)
	test.ExpectEquality(t, md.Mode(), "HEADLESS")
	test.ExpectEquality(t, md.GetArg(0), "extra")

	// flags for the new mode are parsed from the arguments following the
	// sub-mode
	md.NewMode()
	md.AddSubModes("A", "B")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "A")
	test.ExpectEquality(t, md.Path(), "HEADLESS/A")
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-unknown"})
	md.AddSubModes("RUN", "HEADLESS")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestHelp(t *testing.T) {
	w := &test.CompareWriter{}
	md := modalflag.Modes{Output: w}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("RUN", "HEADLESS")
	md.AddInt("size", 512, "size of offscreen surface")
	md.AdditionalHelp("more help")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, err)

	help := w.String()
	test.ExpectSuccess(t, strings.HasPrefix(help, "Usage:\n"))
	test.ExpectSuccess(t, strings.Contains(help, "size of offscreen surface"))
	test.ExpectSuccess(t, strings.Contains(help, "available sub-modes: RUN, HEADLESS"))
	test.ExpectSuccess(t, strings.Contains(help, "default: RUN"))
	test.ExpectSuccess(t, strings.HasSuffix(help, "\nmore help\n"))
}

func TestNoHelp(t *testing.T) {
	w := &test.CompareWriter{}
	md := modalflag.Modes{Output: w}
	md.NewArgs([]string{"-help"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, w.Compare("No help available\n"))
}
