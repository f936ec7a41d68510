package main

import (
	"os"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <resume.txt>",
	Short: "Parse resume text into a structured profile",
	Long:  "Parse a plain-text resume into a structured profile (entities, contact details, skills, work experience, education) and print it as JSON.",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

var (
	parseConfigPath   string
	parseTaxonomyPath string
)

func init() {
	parseCmd.Flags().StringVarP(&parseConfigPath, "config", "c", "", "Path to JSON config file")
	parseCmd.Flags().StringVarP(&parseTaxonomyPath, "taxonomy", "x", "", "Path to JSON skill taxonomy (default: embedded)")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(parseConfigPath, parseTaxonomyPath)
	if err != nil {
		return err
	}

	text, err := readTextFile(args[0])
	if err != nil {
		return err
	}

	profile := rt.parser.Parse(cmd.Context(), text)
	return writeJSON(os.Stdout, profile)
}
