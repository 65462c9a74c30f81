package commands

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/input"
	"github.com/battlesnakeio/arcade/render"
	"github.com/battlesnakeio/arcade/worker"
	"github.com/battlesnakeio/arcade/world"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	games      = 5
	seed       = time.Now().UnixNano()
	botPeriod  = 20 * time.Millisecond
	turnChance = 30
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "plays games headless with a random bot and reports the scores",
	Args: func(c *cobra.Command, args []string) error {
		if games < 1 {
			return errors.New("at least one game is required")
		}
		if turnChance < 0 || turnChance > 100 {
			return errors.Errorf("turn chance %d is not a percentage", turnChance)
		}
		return nil
	},
	PreRunE: func(*cobra.Command, []string) error {
		return setupLogging(os.Stderr)
	},
	RunE: func(*cobra.Command, []string) error {
		prometheus()
		return simulate(os.Stdout)
	},
}

func init() {
	simulateCmd.Flags().IntVarP(&games, "games", "n", games, "number of games to play")
	simulateCmd.Flags().Int64Var(&seed, "seed", seed, "random seed for cherries and the bot")
	simulateCmd.Flags().DurationVar(&botPeriod, "bot-period", botPeriod, "delay between two bot key presses")
	simulateCmd.Flags().IntVar(&turnChance, "turn-chance", turnChance, "percent of bot key presses that are turns")
}

func simulate(out io.Writer) error {
	d := difficulty()
	b, err := board()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	finished := make(chan world.Snapshot, games)
	logger := &render.Log{OnGameOver: func(s world.Snapshot) {
		select {
		case finished <- s:
		default:
		}
	}}

	w := world.New(b,
		world.WithDifficulty(d),
		world.WithRand(rand.New(rand.NewSource(seed))),
	)
	sched := worker.NewScheduler(ctx, w, logger, d.SnakeSpeed, config.RenderPeriod)
	w.Attach(sched)

	bot := &input.Bot{
		Status:     w.Status,
		Rand:       rand.New(rand.NewSource(seed + 1)),
		Period:     botPeriod,
		TurnChance: turnChance,
	}
	adapter := &input.Adapter{Handler: w, Redraw: sched.Redraw}

	log.WithFields(log.Fields{
		"games":      games,
		"seed":       seed,
		"difficulty": d.Name,
	}).Info("starting simulation")

	errs := make(chan error, 1)
	go func() {
		errs <- adapter.Run(ctx, bot.Events(ctx))
	}()

	var total uint
	var best world.Snapshot
	for played := 0; played < games; {
		select {
		case s := <-finished:
			played++
			total += s.Score
			if s.Score >= best.Score {
				best = s
			}
			fmt.Fprintf(out, "game %d: score %d, %d turns, %s\n", played, s.Score, s.Turn, s.DeathCause)
		case err := <-errs:
			cancel()
			sched.Wait()
			return errors.Wrap(err, "bot stopped")
		}
	}

	// The adapter may start a run while handling a key, so it has to be gone
	// before the scheduler is waited on.
	cancel()
	<-errs
	sched.Wait()

	fmt.Fprintf(out, "played %d games, average score %.2f, best %d in run %s\n",
		games, float64(total)/float64(games), best.Score, best.RunID)
	return nil
}
