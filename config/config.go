package config

import (
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// Configuration variables. These aren't user facing but useful for tuning the
// details of the game loop and terminal.
var (
	BoardWidth   = getEnvInt("BOARD_WIDTH", 760)
	BoardHeight  = getEnvInt("BOARD_HEIGHT", 520)
	RenderPeriod = time.Duration(getEnvInt("RENDER_PERIOD_MS", 16)) * time.Millisecond
	InputRate    = rate.Limit(getEnvInt("INPUT_RPS", 30))
	InputBurst   = getEnvInt("INPUT_BURST", 5)
)

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}
