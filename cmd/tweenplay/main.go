// Package main provides a headless show player. It steps the engine on
// a synthetic clock at a fixed rate, so a given show file always
// produces the same frames regardless of wall time.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/tweenbox/internal/app/engine"
	"github.com/osa030/tweenbox/internal/app/show"
	"github.com/osa030/tweenbox/internal/domain/stage"
	"github.com/osa030/tweenbox/internal/infra/logger"
	"github.com/osa030/tweenbox/internal/infra/wsfeed"
)

var (
	app        = kingpin.New("tweenplay", "tweenbox headless show player")
	showPath   = app.Arg("show", "Path to show file").Required().String()
	fps        = app.Flag("fps", "Frames per second").Default("60").Int()
	maxSeconds = app.Flag("max-seconds", "Stop after this much synthetic time").Default("30").Float64()
	timeScale  = app.Flag("time-scale", "Scaled clock rate").Default("1").Float64()
	outPath    = app.Flag("out", "Write frames as JSON lines to this file").String()
	verbose    = app.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Bool()
)

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	loggerConfig := logger.Config{Output: "stderr", Level: "info"}
	if *verbose {
		loggerConfig.Level = "debug"
	}
	if err := logger.Init(loggerConfig); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	if err := play(); err != nil {
		zlog.Error().Msgf("Play error: %v", err)
		os.Exit(1)
	}
}

func play() error {
	def, err := show.Load(*showPath)
	if err != nil {
		return fmt.Errorf("failed to load show: %w", err)
	}

	st := stage.New()
	eng := engine.New(st)
	eng.Clock().SetTimeScale(*timeScale)

	s, err := show.Build(def, st, eng)
	if err != nil {
		return fmt.Errorf("failed to build show: %w", err)
	}

	// Log step completions as they happen
	for _, name := range s.Names() {
		tw, _ := s.Step(name)
		stepName := name
		tw.AddOnFinished(func() {
			zlog.Info().Msgf("step finished: %s", stepName)
		}, false)
	}

	var enc *json.Encoder
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		enc = json.NewEncoder(f)
	}

	// The hook runs synchronously inside Step, so reading the loop's
	// current frame time here is safe.
	var now time.Time
	if enc != nil {
		eng.SetHooks(engine.Hooks{
			AfterStep: func(frame uint64) {
				_ = enc.Encode(wsfeed.Frame{
					T:       now.UnixNano(),
					FrameID: frame,
					Nodes:   eng.Snapshot(),
				})
			},
		})
	}

	epoch := time.Unix(0, 0)
	dt := time.Second / time.Duration(*fps)
	frames := int(*maxSeconds * float64(*fps))

	rendered := 0
	for i := 0; i <= frames; i++ {
		now = epoch.Add(time.Duration(i) * dt)
		eng.Step(now)
		rendered++

		if eng.Active() == 0 {
			break
		}
	}

	elapsed := eng.Clock().RealTime()
	if active := eng.Active(); active > 0 {
		fmt.Printf("Played %s: %d frames (%.2fs), stopped with %d tween(s) still active\n",
			s.Name(), rendered, elapsed, active)
	} else {
		fmt.Printf("Played %s: %d frames (%.2fs), all tweens settled\n",
			s.Name(), rendered, elapsed)
	}

	return nil
}
