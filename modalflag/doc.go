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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// sub-modes on the command line:
//
//	musicvis -size 256 HEADLESS
//
// The first sub-mode added with AddSubModes() is the default and is selected
// when the first non-flag argument does not name a sub-mode. Sub-mode names
// are case insensitive.
//
// Help is printed to the Output writer when the -help flag is found and
// Parse() returns ParseHelp. The help lists the flags for the current mode
// followed by the available sub-modes.
package modalflag
