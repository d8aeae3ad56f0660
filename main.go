package main

import (
	"github.com/joho/godotenv"

	"github.com/ctmerge/ctmerge/cmd"
)

func main() {
	// Optional; the environment wins when no .env is present.
	_ = godotenv.Load()

	cmd.Execute()
}
