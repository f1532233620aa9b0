package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/nightwalk/internal/audio"
	"github.com/vovakirdan/nightwalk/internal/core"
	"github.com/vovakirdan/nightwalk/internal/games/nightwalk"
	"github.com/vovakirdan/nightwalk/internal/platform/tui"
	"github.com/vovakirdan/nightwalk/internal/registry"
	"github.com/vovakirdan/nightwalk/internal/storage"
)

var (
	flagMute    bool
	flagVolume  float64
	flagLogFile string
	flagDebug   bool
)

// addSessionFlags registers the flags play and menu share.
func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagUniversity, "university", "", "Campus to walk (default: random per walk)")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable the soundtrack")
	cmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Soundtrack volume from 0 to 1")
	cmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write the event log to this file")
	cmd.Flags().BoolVar(&flagDebug, "debug", false, "Also log blocking and spawn events")
}

// localSession holds what a local play or menu run needs for its lifetime.
type localSession struct {
	store   *storage.Store
	player  *audio.Player
	logger  *log.Logger
	logFile *os.File
	config  core.RuntimeConfig
}

// openSession configures the game package and opens optional resources.
// Storage and audio failures only warn; the walk goes on without them.
func openSession() *localSession {
	nightwalk.SetConfigPath(flagConfig)
	nightwalk.SetDifficultyPreset(flagDifficulty)
	nightwalk.SetUniversity(flagUniversity)

	s := &localSession{}

	// The alt screen owns the terminal, so logs go to a file or nowhere
	var w io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		} else {
			s.logFile = f
			w = f
		}
	}
	s.logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "nightwalk",
	})
	if flagDebug {
		s.logger.SetLevel(log.DebugLevel)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	s.store = store

	if !flagMute {
		p := audio.NewPlayer(flagVolume)
		if err := p.Initialize(); err != nil {
			s.logger.Warn("audio unavailable", "error", err)
		} else {
			p.Start()
			s.player = p
		}
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	s.config = core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	return s
}

// attach hands the soundtrack to a game before it is run.
func (s *localSession) attach(game registry.Game) {
	if g, ok := game.(*nightwalk.Game); ok && s.player != nil {
		g.SetAudio(s.player)
	}
}

// options builds the model options for one game.
func (s *localSession) options() tui.Options {
	return tui.Options{Logger: s.logger, Cues: s.cues()}
}

// cues returns the audio cue target, or nil when muted.
func (s *localSession) cues() tui.Cuer {
	if s.player == nil {
		return nil
	}
	return s.player
}

// Close releases everything openSession acquired.
func (s *localSession) Close() {
	if s.player != nil {
		s.player.Cleanup()
	}
	if s.store != nil {
		s.store.Close()
	}
	if s.logFile != nil {
		s.logFile.Close()
	}
}
