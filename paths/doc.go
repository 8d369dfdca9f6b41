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

// Package paths contains functions to prepare paths to musicvis resources.
//
// The policy of ResourcePath() is simple: if the base resource path, currently
// defined to be ".musicvis", is present in the program's current directory
// then that is the base path that will used. If it is not present, then the
// user's config directory is used. The package uses os.UserConfigDir() from go
// standard library for this.
//
// For example, on a modern Linux system the following will return
// /home/user/.config/musicvis/musicvis.yaml:
//
//	pth, err := paths.ResourcePath("musicvis.yaml")
//
// Directories are not created by the package.
package paths
