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
	"fmt"
	"os"
	"path/filepath"
)

// the base path for all resources. note that we don't use this value directly
// except in the basePath() function. that function should be used instead.
const baseResourcePath = ".musicvis"

// name of the configuration file found in the resource path.
const ConfigFile = "musicvis.yaml"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with operating system specific details.
func ResourcePath(resource ...string) (string, error) {
	base, err := basePath(os.UserConfigDir)
	if err != nil {
		return "", err
	}

	p := make([]string, 0, len(resource)+1)
	p = append(p, base)
	p = append(p, resource...)

	return filepath.Join(p...), nil
}

// DefaultConfig returns the path to the configuration file if it exists. The
// empty string is returned if it does not.
func DefaultConfig() string {
	pth, err := ResourcePath(ConfigFile)
	if err != nil {
		return ""
	}
	if _, err := os.Stat(pth); err != nil {
		return ""
	}
	return pth
}

// basePath returns baseResourcePath if it exists in the current directory.
// otherwise the path is in the directory returned by the configDir function.
func basePath(configDir func() (string, error)) (string, error) {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath, nil
	}

	cnf, err := configDir()
	if err != nil {
		return "", fmt.Errorf("paths: %w", err)
	}

	return filepath.Join(cnf, baseResourcePath[1:]), nil
}
