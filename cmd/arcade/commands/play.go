package commands

import (
	"context"
	"io/ioutil"

	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/input"
	"github.com/battlesnakeio/arcade/render"
	"github.com/battlesnakeio/arcade/worker"
	"github.com/battlesnakeio/arcade/world"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var cherryAsset = "assets/cherry.txt"

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "play a game in the terminal",
	RunE: func(*cobra.Command, []string) error {
		return play()
	},
}

func init() {
	playCmd.Flags().StringVar(&cherryAsset, "cherry-asset", cherryAsset, "text file holding the cherry glyph")
}

func play() error {
	// The terminal belongs to the game, logs only go to a file.
	if err := setupLogging(ioutil.Discard); err != nil {
		return err
	}
	prometheus()

	d := difficulty()
	b, err := board()
	if err != nil {
		return err
	}

	cherry, assetErr := render.LoadCherry(cherryAsset)
	if assetErr != nil {
		log.WithError(assetErr).WithField("fallback", string(render.FallbackCherry)).Warn("cherry asset not loaded")
	}

	if err := termbox.Init(); err != nil {
		return errors.Wrap(err, "unable to initialise terminal")
	}
	defer termbox.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := world.New(b,
		world.WithDifficulty(d),
		world.WithCherryLoaded(assetErr == nil),
	)
	sched := worker.NewScheduler(ctx, w, render.NewTerminal(cherry), d.SnakeSpeed, config.RenderPeriod)
	w.Attach(sched)

	log.WithFields(log.Fields{
		"difficulty": d.Name,
		"speed":      d.SnakeSpeed,
		"respawn":    d.CherrySpawnDelay,
		"board":      b,
	}).Info("starting arcade")

	sched.Redraw()
	adapter := &input.Adapter{
		Handler: w,
		Limiter: rate.NewLimiter(config.InputRate, config.InputBurst),
		Redraw:  sched.Redraw,
	}
	events := input.EventQueue(ctx)
	err = adapter.Run(ctx, events)

	cancel()
	for range events {
	}
	sched.Wait()
	s := w.Snapshot()
	log.WithFields(log.Fields{
		"score": s.Score,
		"best":  s.Best,
	}).Info("player quit")
	return err
}
