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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/jetsetilly/musicvis/audio"
	"github.com/jetsetilly/musicvis/gfx"
	"github.com/jetsetilly/musicvis/logger"
	"github.com/jetsetilly/musicvis/metrics"
	"github.com/jetsetilly/musicvis/modalflag"
	"github.com/jetsetilly/musicvis/paths"
	"github.com/jetsetilly/musicvis/performance"
	"github.com/jetsetilly/musicvis/prefs"
	"github.com/jetsetilly/musicvis/screen"
	"github.com/jetsetilly/musicvis/sdlwindow"
	"github.com/jetsetilly/musicvis/statsview"
	"github.com/jetsetilly/musicvis/version"
	"github.com/jetsetilly/musicvis/visualizer"
	"golang.org/x/sync/errgroup"
)

// SDL requires that windows are created and serviced on the main thread. the
// main goroutine is locked to the main thread before main() is called.
func init() {
	runtime.LockOSThread()
}

// exit values.
const (
	exitOK          = 0
	exitParseError  = 10
	exitRunError    = 20
	exitShaderError = 30
)

// #mainthread
func main() {
	os.Exit(launch(os.Args[1:], os.Stdout, sdlwindow.Create))
}

// options for the RUN and HEADLESS modes.
type options struct {
	mode        string
	size        int
	rate        time.Duration
	frames      int
	prefs       string
	config      string
	log         bool
	export      string
	exportEvery int
	metrics     string
	statsview   bool
	profile     performance.Profile
	create      gfx.WindowCreator
}

// launch parses the command line and runs the selected mode. windows are
// created with the create function. returns the exit value of the program.
func launch(args []string, output io.Writer, create gfx.WindowCreator) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "HEADLESS")
	md.AdditionalHelp("RUN opens a window. HEADLESS renders without a visible window.")

	var opts options
	size := md.AddInt("size", 512, "size of the visualizer in pixels")
	rate := md.AddDuration("rate", 16*time.Millisecond, "interval between audio frames")
	frames := md.AddInt("frames", 0, "number of audio frames to generate (0 for no limit)")
	prf := md.AddString("prefs", "", "preferences (eg. \"gfx.compositeScale::1; gfx.vsync::false\")")
	config := md.AddString("config", "", "YAML file of preferences (default is musicvis.yaml in the resource path)")
	log := md.AddBool("log", false, "echo log to stdout")
	export := md.AddString("export", "", "directory to write frames to (HEADLESS only)")
	exportEvery := md.AddInt("exportEvery", 1, "write every Nth frame when exporting")
	met := md.AddString("metrics", "", "address to serve prometheus metrics on (eg. localhost:9090)")
	stats := md.AddBool("statsview", false, "run the statsview server (if available)")
	profile := md.AddString("profile", "none", "create profiling data (cpu, mem or both as \"cpu,mem\")")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	profType, err := performance.ParseProfileString(*profile)
	if err != nil {
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	opts = options{
		mode:        md.Mode(),
		size:        *size,
		rate:        *rate,
		frames:      *frames,
		prefs:       *prf,
		config:      *config,
		log:         *log,
		export:      *export,
		exportEvery: *exportEvery,
		metrics:     *met,
		statsview:   *stats,
		profile:     profType,
		create:      create,
	}

	err = run(opts, output)
	if err != nil {
		var shErr *gfx.ShaderError
		if errors.As(err, &shErr) {
			fmt.Fprintln(output, shErr.Log)
			fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
			return exitShaderError
		}
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitRunError
	}

	return exitOK
}

func run(opts options, output io.Writer) error {
	if opts.size <= 0 {
		return fmt.Errorf("size must be positive (%d)", opts.size)
	}
	if opts.export != "" && opts.mode != "HEADLESS" {
		return fmt.Errorf("frames can only be exported in HEADLESS mode")
	}

	if opts.log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	logger.Log(logger.Allow, "musicvis", version.String())

	if opts.statsview {
		if statsview.Available() {
			statsview.Launch(output)
		} else {
			logger.Log(logger.Allow, "musicvis", "statsview not available in this build")
		}
	}

	grp, gfxPrefs, level, err := preferences(opts)
	if err != nil {
		return err
	}
	logger.Logf(logger.Allow, "musicvis", "preferences:\n%s", grp)

	var met *metrics.Metrics
	if opts.metrics != "" {
		mp, shutdown, err := metrics.InitProvider(version.ApplicationName, versionNumber())
		if err != nil {
			return err
		}
		defer func() {
			_ = shutdown(context.Background())
		}()
		met, err = metrics.NewMetrics(mp)
		if err != nil {
			return err
		}
	}

	var exporter *screen.JPEGExporter
	var capture *screen.Capture
	var scr gfx.Screen
	switch opts.mode {
	case "HEADLESS":
		var sink screen.Sink
		if opts.export != "" {
			exporter, err = screen.NewJPEGExporter(opts.export, opts.exportEvery)
			if err != nil {
				return err
			}
			sink = exporter
		}
		capture = screen.NewCapture(sink)
		scr = capture
	default:
		scr = screen.NewWindow()
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ctx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	eg, egCtx := errgroup.WithContext(ctx)

	in, out := audio.Pipe(egCtx)
	gen := &audio.Generator{
		Interval: opts.rate,
		Limit:    opts.frames,
		Level:    float32(level.Get().(float64)),
	}
	eg.Go(func() error {
		err := gen.Run(egCtx, in)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	if opts.metrics != "" {
		eg.Go(func() error {
			return metrics.Serve(egCtx, opts.metrics)
		})
	}

	startTime := time.Now()
	renderErr := performance.RunProfiler(opts.profile, "musicvis", func() error {
		return gfx.Run(egCtx, opts.create, visualizer.NewSmiley(), scr,
			out, int32(opts.size), gfxPrefs, met)
	})

	if capture != nil && opts.rate > 0 {
		fps, accuracy := performance.CalcFPS(capture.Frames(), time.Since(startTime), float64(time.Second)/float64(opts.rate))
		logger.Logf(logger.Allow, "musicvis", "%.2f fps (%d frames) %.1f%%", fps, capture.Frames(), accuracy)
	}

	// the render loop has ended so background tasks can stop
	cancel()
	waitErr := eg.Wait()

	var exportErr error
	if exporter != nil {
		exportErr = exporter.Wait()
		logger.Logf(logger.Allow, "musicvis", "%d frames exported to %s", exporter.Written(), opts.export)
	}

	return errors.Join(renderErr, waitErr, exportErr)
}

// preferences creates the preferences group and applies the command line and
// configuration file.
func preferences(opts options) (*prefs.Group, *gfx.Preferences, *prefs.Float, error) {
	grp := prefs.NewGroup()

	if opts.prefs != "" {
		prefs.PushCommandLineStack(opts.prefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "prefs", "unknown preferences: %s", unused)
			}
		}()
	}

	gfxPrefs, err := gfx.NewPreferences(grp)
	if err != nil {
		return nil, nil, nil, err
	}

	level := &prefs.Float{}
	_ = level.Set(1.0)
	err = grp.Add("audio.level", level)
	if err != nil {
		return nil, nil, nil, err
	}

	config := opts.config
	if config == "" {
		config = paths.DefaultConfig()
	}

	if config != "" {
		logger.Logf(logger.Allow, "prefs", "loading %s", config)

		f, err := os.Open(config)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("prefs: %w", err)
		}
		defer f.Close()

		err = grp.LoadYAML(f)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	return grp, gfxPrefs, level, nil
}

func versionNumber() string {
	v, _, _ := version.Version()
	return v
}
