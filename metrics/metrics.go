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

// Package metrics records the performance of the render loop with
// OpenTelemetry instruments. The instruments can be exported for scraping by
// Prometheus with InitProvider() and Serve().
//
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name used for all metrics.
const meterName = "github.com/jetsetilly/musicvis"

// Metrics holds the instruments used by the render loop.
type Metrics struct {
	// FramesRendered counts ticks that ran the pipeline. Recorded with a
	// "mode" attribute of "windowed" or "headless"
	FramesRendered metric.Int64Counter

	// FramesSkipped counts ticks that were skipped because the audio channel
	// was disconnected
	FramesSkipped metric.Int64Counter

	// TickDuration is the time taken to run the pipeline and present the
	// result
	TickDuration metric.Float64Histogram

	// SetupFailures counts failures to construct the pipeline
	SetupFailures metric.Int64Counter
}

// tickBuckets are histogram bucket boundaries (in seconds) around the 16ms of
// a 60Hz display.
var tickBuckets = []float64{
	0.001, 0.002, 0.004, 0.008, 0.016, 0.033, 0.066, 0.1, 0.25,
}

// NewMetrics creates the instruments using the given metric.MeterProvider.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.FramesRendered, err = m.Int64Counter("musicvis.frames.rendered",
		metric.WithDescription("Total frames rendered by the pipeline."),
	); err != nil {
		return nil, err
	}
	if met.FramesSkipped, err = m.Int64Counter("musicvis.frames.skipped",
		metric.WithDescription("Total ticks skipped because audio was disconnected."),
	); err != nil {
		return nil, err
	}
	if met.TickDuration, err = m.Float64Histogram("musicvis.tick.duration",
		metric.WithDescription("Time taken to render and present a frame."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(tickBuckets...),
	); err != nil {
		return nil, err
	}
	if met.SetupFailures, err = m.Int64Counter("musicvis.setup.failures",
		metric.WithDescription("Total failures to set up the render pipeline."),
	); err != nil {
		return nil, err
	}

	return met, nil
}

func modeAttr(mode string) metric.MeasurementOption {
	return metric.WithAttributes(attribute.String("mode", mode))
}

// RecordFrame records a rendered frame and the time it took.
func (m *Metrics) RecordFrame(ctx context.Context, mode string, d time.Duration) {
	if m == nil {
		return
	}
	m.FramesRendered.Add(ctx, 1, modeAttr(mode))
	m.TickDuration.Record(ctx, d.Seconds(), modeAttr(mode))
}

// RecordSkip records a skipped tick.
func (m *Metrics) RecordSkip(ctx context.Context, mode string) {
	if m == nil {
		return
	}
	m.FramesSkipped.Add(ctx, 1, modeAttr(mode))
}

// RecordSetupFailure records a failure to set up the pipeline.
func (m *Metrics) RecordSetupFailure(ctx context.Context, mode string) {
	if m == nil {
		return
	}
	m.SetupFailures.Add(ctx, 1, modeAttr(mode))
}
