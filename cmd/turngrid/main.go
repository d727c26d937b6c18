package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/lixenwraith/turngrid/audio"
	"github.com/lixenwraith/turngrid/config"
	"github.com/lixenwraith/turngrid/core"
	"github.com/lixenwraith/turngrid/engine"
	"github.com/lixenwraith/turngrid/input"
	"github.com/lixenwraith/turngrid/render"
	"github.com/lixenwraith/turngrid/status"
	"github.com/lixenwraith/turngrid/system"
)

// options are the command line flags of one run
type options struct {
	configPath string
	debug      bool
	sound      bool
	dump       bool
	keys       string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("turngrid", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "YAML config file (default: built-in world)")
	fs.BoolVar(&opts.debug, "debug", false, "Write a debug log to the configured log dir")
	fs.BoolVar(&opts.sound, "sound", false, "Play a tick on every step")
	fs.BoolVar(&opts.dump, "dump", false, "Print a frame to stdout and exit instead of playing")
	fs.StringVar(&opts.keys, "keys", "", "With -dump: movement keys to apply before printing")
	err := fs.Parse(args)
	return opts, err
}

// run executes one session and returns the process exit status
// Quit keys end with 0; any setup or turn loop failure prints to stderr and ends with 1
func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return 1
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "turngrid: %v\n", err)
		return 1
	}
	if opts.debug {
		cfg.Log.Debug = true
	}
	if opts.sound {
		cfg.Audio.Enabled = true
	}

	logger, logFile, err := setupLogging(cfg.Log)
	if err != nil {
		fmt.Fprintf(stderr, "turngrid: %v\n", err)
		return 1
	}
	if logFile != nil {
		defer logFile.Close()
	}
	defer logger.Sync()
	logger = logger.With(zap.String("session", uuid.NewString()))

	gameMap, world, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(stderr, "turngrid: %v\n", err)
		return 1
	}
	keys, err := cfg.KeyTable()
	if err != nil {
		fmt.Fprintf(stderr, "turngrid: %v\n", err)
		return 1
	}

	reg := status.NewRegistry()
	ctx := engine.NewGameContext(world, gameMap, logger, reg)
	logger.Info("session start",
		zap.Int("map_width", gameMap.Width()),
		zap.Int("map_height", gameMap.Height()),
		zap.Int("entities", world.EntityCount()))

	if opts.dump {
		err = dump(ctx, keys, opts.keys, stdout)
	} else {
		err = play(ctx, keys, audioSettings(cfg.Audio))
	}

	logger.Info("session end", reg.Fields()...)
	if err != nil {
		fmt.Fprintf(stderr, "turngrid: %v\n", err)
		return 1
	}
	return 0
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadFile(path)
}

// audioSettings converts the audio section for audio.NewPlayer
func audioSettings(c config.AudioConfig) *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Enabled
	if c.Frequency > 0 {
		ac.StepFreq = c.Frequency
	}
	if c.DurationMs > 0 {
		ac.StepDuration = time.Duration(c.DurationMs) * time.Millisecond
	}
	return ac
}

// play runs the interactive loop on the terminal
func play(ctx *engine.GameContext, keys *input.KeyTable, audioCfg *audio.AudioConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	core.SetCrashScreen(screen)
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()
	// Panic Recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	sound, err := audio.NewPlayer(audioCfg)
	if err != nil {
		// Non-fatal, game runs without sound
		ctx.Logger.Warn("audio unavailable", zap.Error(err))
	}
	defer sound.Close()

	var sink render.Sink = render.NewScreenSink(screen)
	if ctx.Logger.Core().Enabled(zap.DebugLevel) {
		sink = render.NewDigestSink(sink)
	}

	game, err := engine.NewGame(ctx, screen,
		system.NewMovementSystem(ctx, keys, sound),
		system.NewRenderSystem(ctx, sink))
	if err != nil {
		return err
	}
	return game.Run()
}

// dump replays keys through the turn loop against an in-memory sink and writes the last frame to out
func dump(ctx *engine.GameContext, keys *input.KeyTable, script string, out io.Writer) error {
	rec := render.NewRecorder(ctx.Map.Width(), ctx.Map.Height(), nil)
	events := append(input.KeyEvents(script), input.EscapeEvent())

	game, err := engine.NewGame(ctx, input.NewScriptSource(events...),
		system.NewMovementSystem(ctx, keys, nil),
		system.NewRenderSystem(ctx, rec))
	if err != nil {
		return err
	}
	if err := game.Run(); err != nil {
		return err
	}

	if _, err := out.Write(append(rec.Frame(), '\n')); err != nil {
		return errors.Wrap(err, "write frame")
	}
	return nil
}
