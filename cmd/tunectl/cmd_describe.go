package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/modelkit/tune"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "List the tunable parameters declared by a pipeline",
	RunE:  runDescribe,
}

func init() {
	rootCmd.AddCommand(describeCmd)
}

func runDescribe(cmd *cobra.Command, _ []string) error {
	stages, err := loadPipeline(viper.GetString("pipeline"))
	if err != nil {
		return err
	}

	set, err := tune.Build(stages...)
	if err != nil {
		return fmt.Errorf("building parameter set: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderSet(set))
	return nil
}

// renderSet renders the set description as a bordered table.
func renderSet(set *tune.ParameterSet) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("KEY", "LABEL", "KIND", "RANGE", "STATUS")

	for _, row := range set.Describe() {
		t.Row(row.Key, row.Label, row.Kind, row.Range, row.Status)
	}

	return t.Render()
}
