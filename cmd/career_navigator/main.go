// Package main provides the entry point for the Career Navigator.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_navigator",
	Short: "Resume-driven career path advisor",
	Long:  "Career Navigator analyzes a resume, maps its skills to the Lightcast taxonomy, and suggests career paths with learning pathways and job market snapshots via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
