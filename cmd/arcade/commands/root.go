package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/battlesnakeio/arcade/version"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "arcade",
	Short:   "arcade plays snake in the terminal",
	Version: version.Version,
	RunE: func(c *cobra.Command, args []string) error {
		return playCmd.RunE(c, args)
	},
}

var (
	difficultyName = config.Easy.Name
	boardWidth     = config.BoardWidth
	boardHeight    = config.BoardHeight
	logLevel       = "info"
	logFile        string

	logOutput io.Closer
)

// Execute runs the root command
func Execute() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&difficultyName, "difficulty", difficultyName,
		fmt.Sprintf("snake speed preset (%s)", strings.Join(config.DifficultyNames(), ", ")))
	flags.IntVar(&boardWidth, "width", boardWidth, "width of the board in distance units")
	flags.IntVar(&boardHeight, "height", boardHeight, "height of the board in distance units")
	flags.StringVar(&logLevel, "log-level", logLevel, "log level (debug, info, warn, error)")
	flags.StringVar(&logFile, "log-file", logFile, "write logs to this file")
	flags.BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	flags.StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")

	rootCmd.Flags().AddFlagSet(playCmd.Flags())
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)

	err := rootCmd.Execute()
	if logOutput != nil {
		logOutput.Close()
	}
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// setupLogging points logrus at the log file, or at fallback when no file was
// given.
func setupLogging(fallback io.Writer) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	log.SetLevel(level)

	if logFile == "" {
		log.SetOutput(fallback)
		return nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return errors.Wrap(err, "unable to open log file")
	}
	logOutput = f
	log.SetOutput(f)
	return nil
}

func difficulty() config.Difficulty {
	d, ok := config.LookupDifficulty(difficultyName)
	if !ok {
		log.WithFields(log.Fields{
			"difficulty": difficultyName,
			"using":      d.Name,
		}).Warn("unknown difficulty")
	}
	return d
}

func board() (rules.Board, error) {
	b := rules.NewBoard(boardWidth, boardHeight)
	if err := b.Validate(); err != nil {
		return b, err
	}
	return b, nil
}
