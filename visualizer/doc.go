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

// Package visualizer contains implementations of the gfx.Visualizer
// interface.
//
// Smiley is a face drawn entirely in a fragment shader. The mouth opens with
// the amplitude of the 400Hz to 2kHz bands of the audio, the border glows
// with the same amplitude, and the eyes pulse at a constant rate.
package visualizer
