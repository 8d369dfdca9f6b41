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

package audio

import (
	"context"
	"math"
	"time"

	"github.com/jetsetilly/musicvis/logger"
)

// Generator produces synthetic frames at a fixed interval. Each frame has a
// pulse in the 400Hz to 2kHz bands and a low level spread across the rest of
// the spectrum.
//
// The output of the generator is deterministic. The Nth frame is the same on
// every run.
type Generator struct {
	// time between frames. a value of zero means frames are produced as
	// quickly as they can be sent
	Interval time.Duration

	// number of frames to produce before stopping. a value of zero means that
	// the generator runs until the context is cancelled
	Limit int

	// peak of the pulse, summed over the 400Hz to 2kHz bands. a value of
	// zero is treated as 1.0
	Level float32

	tick int
}

// pulse period in frames.
const pulsePeriod = 60

// Next returns the next frame in the sequence.
func (g *Generator) Next() Frame {
	f := NewFrame()

	level := g.Level
	if level == 0 {
		level = 1.0
	}

	// pulse rises and falls over pulsePeriod frames
	p := float32(0.5 - 0.5*math.Cos(2*math.Pi*float64(g.tick%pulsePeriod)/pulsePeriod))

	lo := Bucket(400)
	hi := Bucket(2000) - 1
	n := float32(hi - lo + 1)
	for i := lo; i <= hi; i++ {
		f.HundredHzBuckets[i] = level * p / n
	}

	for i := range f.HundredHzBuckets {
		if i < lo || i > hi {
			f.HundredHzBuckets[i] = 0.001 * float32(NumBuckets-i) / NumBuckets
		}
	}

	g.tick++

	return f
}

// Run sends frames to out until the context is cancelled or the Limit has
// been reached. The out channel is closed when Run returns.
func (g *Generator) Run(ctx context.Context, out chan<- Frame) error {
	defer close(out)

	var tck *time.Ticker
	if g.Interval > 0 {
		tck = time.NewTicker(g.Interval)
		defer tck.Stop()
	}

	logger.Logf(logger.Allow, "audio", "generator started (interval %v)", g.Interval)

	for n := 0; g.Limit == 0 || n < g.Limit; n++ {
		if tck != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tck.C:
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case out <- g.Next():
		}
	}

	logger.Logf(logger.Allow, "audio", "generator finished after %d frames", g.Limit)

	return nil
}
