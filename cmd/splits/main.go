// Command splits fetches a player's ESPN splits and projects stats for an
// upcoming game.
//
// Usage:
//
//	scoracle-splits splits 3112335
//	scoracle-splits predict 3112335 --venue Home --month January --opponent "Boston Celtics"
//	scoracle-splits predict          # prompts for anything not given
package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
