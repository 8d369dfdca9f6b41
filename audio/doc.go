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

// Package audio defines the frame of audio analysis that drives the render
// loop, and the channel plumbing that carries frames from a producer to the
// consumer.
//
// Audio capture and frequency analysis are not part of this package. The
// Generator type produces synthetic frames for demonstration and testing.
package audio
