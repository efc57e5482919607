package main

import (
	"os"

	"quizgame/internal/cli"
)

// @title Quiz Game API
// @version 1.0
// @description Quiz catalog and live quiz game lifecycle.
// @BasePath /api
func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
