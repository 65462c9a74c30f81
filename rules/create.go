package rules

import "github.com/battlesnakeio/arcade/snake"

// CreateSnake returns a fresh snake at the board start position.
func CreateSnake(b Board) *snake.Snake {
	return snake.New(b.Start())
}
