package main

import (
	"os"

	"github.com/joho/godotenv"

	"speechgrade/cmd"
)

func main() {
	// Optional .env for API keys and service URLs.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
