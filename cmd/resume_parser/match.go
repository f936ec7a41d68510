package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/talentsift/resume-parser/internal/match"
	"github.com/talentsift/resume-parser/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match <resume.txt> <job.txt>",
	Short: "Score a resume against a job description",
	Long:  "Score a plain-text resume against a plain-text job description and print the match result as JSON. Hint flags override what would otherwise be derived from the job text.",
	Args:  cobra.ExactArgs(2),
	RunE:  runMatch,
}

var (
	matchConfigPath   string
	matchTaxonomyPath string
	matchTitle        string
	requiredSkills    []string
	requiredYears     int
)

func init() {
	matchCmd.Flags().StringVarP(&matchConfigPath, "config", "c", "", "Path to JSON config file")
	matchCmd.Flags().StringVarP(&matchTaxonomyPath, "taxonomy", "x", "", "Path to JSON skill taxonomy (default: embedded)")
	matchCmd.Flags().StringVar(&matchTitle, "title", "", "Job title hint")
	matchCmd.Flags().StringSliceVar(&requiredSkills, "required-skills", nil, "Required skills hint; replaces skills extracted from the job text")
	matchCmd.Flags().IntVar(&requiredYears, "required-years", 0, "Required years of experience hint")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(matchConfigPath, matchTaxonomyPath)
	if err != nil {
		return err
	}

	resumeText, err := readTextFile(args[0])
	if err != nil {
		return err
	}
	jobText, err := readTextFile(args[1])
	if err != nil {
		return err
	}

	scorer := match.NewScorer(rt.parser.Skills(), rt.cfg.Scoring,
		match.WithEmbedder(match.NewHashingEmbedder(rt.cfg.EmbeddingDim)),
		match.WithLogger(rt.logger),
	)
	result := scorer.Score(resumeText, types.JobDescription{
		Text:           jobText,
		Title:          matchTitle,
		RequiredSkills: requiredSkills,
		RequiredYears:  requiredYears,
	})

	return writeJSON(os.Stdout, result)
}
