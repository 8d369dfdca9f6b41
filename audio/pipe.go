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

import "context"

// Pipe returns the two ends of an unbounded single-producer single-consumer
// queue of frames. Sending on the input never blocks. Frames are received
// from the output in the order they were sent.
//
// Closing the input closes the output once every queued frame has been
// received. Cancelling the context closes the output immediately and any
// queued frames are dropped. A producer that may still be sending should
// select on the same context, as Generator.Run() does.
func Pipe(ctx context.Context) (chan<- Frame, <-chan Frame) {
	in := make(chan Frame)
	out := make(chan Frame)

	go func() {
		defer close(out)

		var queue []Frame
		for {
			if len(queue) == 0 {
				select {
				case <-ctx.Done():
					return
				case f, ok := <-in:
					if !ok {
						return
					}
					queue = append(queue, f)
				}
				continue
			}

			select {
			case <-ctx.Done():
				return
			case f, ok := <-in:
				if !ok {
					for _, f := range queue {
						select {
						case <-ctx.Done():
							return
						case out <- f:
						}
					}
					return
				}
				queue = append(queue, f)
			case out <- queue[0]:
				queue[0] = Frame{}
				queue = queue[1:]
			}
		}
	}()

	return in, out
}
