package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Proged2021/SkillMiner/internal/analysis"
	"github.com/Proged2021/SkillMiner/internal/config"
	"github.com/Proged2021/SkillMiner/internal/llm"
	"github.com/Proged2021/SkillMiner/internal/observability"
	"github.com/Proged2021/SkillMiner/internal/server"
	"github.com/Proged2021/SkillMiner/internal/sns"
	"github.com/Proged2021/SkillMiner/internal/types"
)

var (
	analyzeSkills     []string
	analyzeHobbies    []string
	analyzeOccupation string
	analyzeTwitter    string
	analyzeLinkedIn   string
	analyzeJSON       bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a one-shot skill analysis",
	Long:  `Run the full analysis flow from the command line: synthesize social profiles, generate the report (delegated or local), and print the result.`,
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringSliceVar(&analyzeSkills, "skills", nil, "Comma-separated list of skills (required)")
	analyzeCmd.Flags().StringSliceVar(&analyzeHobbies, "hobbies", nil, "Comma-separated list of hobbies (required)")
	analyzeCmd.Flags().StringVar(&analyzeOccupation, "occupation", "", "Current occupation (required)")
	analyzeCmd.Flags().StringVar(&analyzeTwitter, "twitter", "", "Twitter username for profile enrichment")
	analyzeCmd.Flags().StringVar(&analyzeLinkedIn, "linkedin", "", "LinkedIn username for profile enrichment")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the raw report JSON instead of formatted output")
	_ = analyzeCmd.MarkFlagRequired("skills")
	_ = analyzeCmd.MarkFlagRequired("hobbies")
	_ = analyzeCmd.MarkFlagRequired("occupation")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	var client llm.Client
	if cfg.GeminiAPIKey != "" {
		llmConfig := llm.DefaultConfig()
		if cfg.Model != "" {
			llmConfig.Model = cfg.Model
		}
		gemini, err := llm.NewGeminiClient(ctx, llmConfig, cfg.GeminiAPIKey)
		if err != nil {
			return fmt.Errorf("failed to create generation client: %w", err)
		}
		defer func() {
			if err := gemini.Close(); err != nil {
				log.Printf("Error closing generation client: %v", err)
			}
		}()
		client = gemini
	}

	synthesizer := sns.NewSynthesizer(sns.Credentials{
		sns.PlatformTwitter:  cfg.TwitterAPIKey,
		sns.PlatformLinkedIn: cfg.LinkedInClientID,
	}, sns.NewScrapeFetcher())

	profiles := synthesizer.Profiles(ctx, []sns.Request{
		{Platform: sns.PlatformTwitter, Handle: analyzeTwitter},
		{Platform: sns.PlatformLinkedIn, Handle: analyzeLinkedIn},
	})

	generator := analysis.NewGenerator(client, server.PolicyFromConfig(cfg))
	report, outcome := generator.Generate(ctx, types.UserAttributes{
		Skills:     analyzeSkills,
		Hobbies:    analyzeHobbies,
		Occupation: analyzeOccupation,
	}, profiles)

	if analyzeJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}

	fmt.Printf("Analysis outcome: %s\n\n", outcome)
	observability.NewPrinter(os.Stdout).PrintReport(report)
	return nil
}
