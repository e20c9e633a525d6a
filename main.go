package main

import (
	"github.com/joho/godotenv"

	"github.com/robalobadob/hangman/internal/cli"
)

func main() {
	_ = godotenv.Load()
	cli.Execute()
}
