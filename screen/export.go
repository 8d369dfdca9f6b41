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

package screen

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"sync"

	"github.com/jetsetilly/musicvis/logger"
	"golang.org/x/sync/errgroup"
)

// maximum number of images being encoded at once
const maxEncoders = 4

// JPEGExporter is a Sink that writes every Nth image to a directory. Images
// are encoded on background goroutines. Frame() blocks if maxEncoders images
// are already being encoded.
type JPEGExporter struct {
	dir   string
	every int

	// the number of frames seen, including those not written
	count int

	grp errgroup.Group

	crit    sync.Mutex
	written int
}

// NewJPEGExporter is the preferred method of initialisation for the
// JPEGExporter type. Every image with a frame number that is a multiple of
// every is written. The directory is created if necessary.
func NewJPEGExporter(dir string, every int) (*JPEGExporter, error) {
	if every < 1 {
		every = 1
	}
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	exp := &JPEGExporter{
		dir:   dir,
		every: every,
	}
	exp.grp.SetLimit(maxEncoders)
	return exp, nil
}

// Frame implements the Sink interface.
func (exp *JPEGExporter) Frame(img *image.RGBA) error {
	n := exp.count
	exp.count++
	if n%exp.every != 0 {
		return nil
	}

	path := filepath.Join(exp.dir, fmt.Sprintf("frame_%06d.jpg", n))

	exp.grp.Go(func() error {
		err := save(path, img)
		if err != nil {
			logger.Logf(logger.Allow, "export", "save failed: %v", err)
			return err
		}
		exp.crit.Lock()
		exp.written++
		exp.crit.Unlock()
		return nil
	})

	return nil
}

// Wait for all images to be written. Returns the first error encountered by
// any of the encoders.
func (exp *JPEGExporter) Wait() error {
	return exp.grp.Wait()
}

// Written returns the number of images written successfully.
func (exp *JPEGExporter) Written() int {
	exp.crit.Lock()
	defer exp.crit.Unlock()
	return exp.written
}

func save(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	err = jpeg.Encode(f, img, &jpeg.Options{Quality: 100})
	if err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
