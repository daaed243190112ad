package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// optional .env for QUICKCAL_* overrides
	_ = godotenv.Load()

	if err := SetupCommands().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
