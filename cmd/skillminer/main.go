// Package main provides the entry point for the SkillMiner HTTP API server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillminer",
	Short: "SkillMiner analysis server",
	Long:  "SkillMiner discovers monetizable hidden skills from a user's skills, hobbies and social profiles, matches them to gig-marketplace jobs, and produces a weekly development roadmap.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
