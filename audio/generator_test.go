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

package audio_test

import (
	"context"
	"testing"
	"time"

	"github.com/jetsetilly/musicvis/audio"
	"github.com/jetsetilly/musicvis/test"
)

func TestGeneratorDeterministic(t *testing.T) {
	var a, b audio.Generator
	for i := 0; i < 100; i++ {
		fa := a.Next()
		fb := b.Next()
		test.ExpectEquality(t, len(fa.HundredHzBuckets), audio.NumBuckets)
		for j := range fa.HundredHzBuckets {
			if !test.ExpectEquality(t, fa.HundredHzBuckets[j], fb.HundredHzBuckets[j], i, j) {
				return
			}
		}
	}
}

func TestGeneratorPulse(t *testing.T) {
	g := audio.Generator{Level: 1.0}

	// first frame is at the bottom of the pulse
	f := g.Next()
	test.ExpectApproximate(t, f.Sum(4, 19), 0.0, 0.0001)

	// half way through the period is the peak of the pulse
	for i := 1; i < 30; i++ {
		g.Next()
	}
	f = g.Next()
	test.ExpectApproximate(t, f.Sum(4, 19), 1.0, 0.0001)

	// buckets outside the pulse are quiet but not silent
	test.ExpectInequality(t, f.HundredHzBuckets[0], 0.0)
	test.ExpectApproximate(t, f.HundredHzBuckets[100], 0.0005, 0.00001)
}

func TestGeneratorLimit(t *testing.T) {
	g := audio.Generator{Limit: 10}
	out := make(chan audio.Frame)

	done := make(chan error)
	go func() {
		done <- g.Run(context.Background(), out)
	}()

	var n int
	for range out {
		n++
	}
	test.ExpectEquality(t, n, 10)
	test.ExpectSuccess(t, <-done)
}

func TestGeneratorCancel(t *testing.T) {
	g := audio.Generator{Interval: time.Millisecond}
	out := make(chan audio.Frame)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error)
	go func() {
		done <- g.Run(ctx, out)
	}()

	<-out
	<-out
	cancel()

	// drain until the generator closes the channel
	for range out {
	}
	test.ExpectEquality(t, <-done, context.Canceled)
}
