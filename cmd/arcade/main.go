package main

import (
	"math/rand"
	"time"

	"github.com/battlesnakeio/arcade/cmd/arcade/commands"
)

func main() {
	rand.Seed(time.Now().UnixNano())
	commands.Execute()
}
