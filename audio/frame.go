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

// BucketWidth is the width in hertz of each bucket in a Frame.
const BucketWidth = 100

// NumBuckets is the number of buckets in a Frame created with NewFrame(),
// covering 0Hz to 20kHz.
const NumBuckets = 200

// Frame is the result of analysing a short window of audio. Each value in
// HundredHzBuckets is the amplitude of a 100Hz wide frequency band, starting
// with the lowest.
//
// The consumer of a Frame takes ownership of it and must not keep it beyond
// the tick in which it was received.
type Frame struct {
	HundredHzBuckets []float32
}

// NewFrame returns a silent frame with NumBuckets buckets.
func NewFrame() Frame {
	return Frame{
		HundredHzBuckets: make([]float32, NumBuckets),
	}
}

// Sum of the buckets from index from to index to inclusive. Buckets outside
// the range of the frame count as zero.
func (f Frame) Sum(from int, to int) float32 {
	var s float32
	for i := max(from, 0); i <= to && i < len(f.HundredHzBuckets); i++ {
		s += f.HundredHzBuckets[i]
	}
	return s
}

// Bucket returns the index of the bucket containing frequency hz.
func Bucket(hz int) int {
	return hz / BucketWidth
}
