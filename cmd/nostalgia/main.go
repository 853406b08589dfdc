// Command nostalgia runs the retro arcade simulator: a handful of channels
// (Pac-Man, Pong, screensavers) behind one window, switched with the digit
// keys or Tab.
package main

import (
	"context"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/urfave/cli/v3"

	"github.com/9MidhunPM/Nostalgia-Sim/internal/arcade"
	"github.com/9MidhunPM/Nostalgia-Sim/internal/audio"
	"github.com/9MidhunPM/Nostalgia-Sim/internal/config"
	"github.com/9MidhunPM/Nostalgia-Sim/internal/hiscore"
	"github.com/9MidhunPM/Nostalgia-Sim/internal/logger"
	"github.com/9MidhunPM/Nostalgia-Sim/internal/pacman"
	"github.com/9MidhunPM/Nostalgia-Sim/internal/pong"
	"github.com/9MidhunPM/Nostalgia-Sim/internal/screensaver"
)

func main() {
	logger.Init()

	cmd := &cli.Command{
		Name:  "nostalgia",
		Usage: "retro arcade channel simulator",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "level",
				Usage: "path to a Pac-Man level file (default: built-in level)",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a YAML config file",
			},
			&cli.IntFlag{
				Name:  "channel",
				Usage: "channel selected at startup (1-based)",
				Value: 1,
			},
			&cli.BoolFlag{
				Name:  "audio",
				Usage: "enable sound cues",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger.Log.WithError(err).Fatal("nostalgia exited")
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}
	if cmd.Bool("audio") {
		cfg.AudioEnabled = true
	}
	if !cfg.AudioEnabled {
		os.Setenv("NOSTALGIA_DISABLE_AUDIO", "1")
	}

	pac := pacman.New(cfg, cmd.String("level"))
	pac.SetEventSink(audio.NewManager())

	if scores, err := hiscore.Open("nostalgia-sim"); err != nil {
		logger.Log.WithError(err).Warn("high scores unavailable")
	} else {
		pac.SetHighScores(scores)
	}

	channels := []arcade.Channel{
		pac,
		pong.New(),
		screensaver.NewLogo("NOSTALGIA"),
		screensaver.NewNoise(time.Now().UnixNano()),
		screensaver.NewLooper(),
	}
	console := arcade.NewConsole(channels, int(cmd.Int("channel"))-1)

	ebiten.SetWindowTitle("Nostalgia-Sim")
	ebiten.SetWindowSize(arcade.ScreenWidth, arcade.ScreenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	return ebiten.RunGame(console)
}
