package rules

import "github.com/battlesnakeio/arcade/snake"

// CheckForGameOver checks if the snake has crashed into a wall or itself. It
// returns the death cause when the game is over.
func CheckForGameOver(b Board, s *snake.Snake) (string, bool) {
	cause := checkForDeath(b, s)
	return cause, cause != ""
}
