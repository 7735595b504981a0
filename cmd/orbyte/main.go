package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Best effort: a local .env may supply ORBYTE_PROMPTS_PATH.
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
