package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-navigator/internal/config"
	"github.com/jonathan/career-navigator/internal/ingestion"
	"github.com/jonathan/career-navigator/internal/llm"
	"github.com/jonathan/career-navigator/internal/observability"
	"github.com/jonathan/career-navigator/internal/pipeline"
	"github.com/jonathan/career-navigator/internal/store"
)

var (
	analyzeFile    string
	analyzeCareers bool
	analyzeJSON    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume file from the command line",
	Long:  `Run the analysis stages over a resume file (.txt or .docx) and print the extracted contact details and mapped skills. With --careers, also match career paths.`,
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFile, "file", "", "Path to resume file (required)")
	analyzeCmd.Flags().BoolVar(&analyzeCareers, "careers", false, "Also match career paths")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the full session state as JSON")
	analyzeCmd.MarkFlagRequired("file") //nolint:errcheck
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(analyzeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	text, err := ingestion.ExtractText(filepath.Base(analyzeFile), data)
	if err != nil {
		return err
	}

	ctx := context.Background()
	client, err := llm.NewClient(ctx, cfg.LLMConfig(), cfg.APIKey())
	if err != nil {
		return fmt.Errorf("failed to create completion client: %w", err)
	}
	defer client.Close() //nolint:errcheck

	pipe := pipeline.New(client, store.New(), cfg.Verbose)

	if err := pipe.Analyze(ctx, text); err != nil {
		return err
	}
	if analyzeCareers {
		if _, err := pipe.MatchCareers(ctx); err != nil {
			return err
		}
	}

	snapshot := pipe.Store().Snapshot()

	if analyzeJSON {
		encoded, err := json.MarshalIndent(snapshot, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Println(string(encoded))
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintContact(snapshot.Contact)
	printer.PrintSkills(snapshot.Skills)
	if analyzeCareers {
		printer.PrintCareerPaths(snapshot.CareerPaths)
	}
	return nil
}
