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

package paths

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/musicvis/test"
)

func TestBasePath(t *testing.T) {
	t.Chdir(t.TempDir())

	pth, err := basePath(func() (string, error) {
		return "/home/user/.config", nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join("/home/user/.config", "musicvis"))

	_, err = basePath(func() (string, error) {
		return "", errors.New("no config directory")
	})
	test.ExpectFailure(t, err)

	// a resource directory in the current directory takes priority
	test.DemandSuccess(t, os.Mkdir(baseResourcePath, 0o700))
	pth, err = basePath(func() (string, error) {
		return "/home/user/.config", nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, baseResourcePath)
}

func TestResourcePath(t *testing.T) {
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(baseResourcePath, 0o700))

	pth, err := ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".musicvis", "foo", "bar", "baz"))

	pth, err = ResourcePath()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".musicvis")
}

func TestDefaultConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(baseResourcePath, 0o700))

	test.ExpectEquality(t, DefaultConfig(), "")

	err := os.WriteFile(filepath.Join(baseResourcePath, ConfigFile), []byte("gfx:\n"), 0o644)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, DefaultConfig(), filepath.Join(".musicvis", "musicvis.yaml"))
}
