package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/modelkit/tune"
)

var finalizeFlags struct {
	sample string
}

var finalizeCmd = &cobra.Command{
	Use:   "finalize",
	Short: "Resolve data-dependent parameter bounds against a CSV sample",
	RunE:  runFinalize,
}

func init() {
	finalizeCmd.Flags().StringVarP(&finalizeFlags.sample, "sample", "d", "", "sample dataset (CSV with header)")
	_ = finalizeCmd.MarkFlagRequired("sample")

	rootCmd.AddCommand(finalizeCmd)
}

func runFinalize(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	stages, err := loadPipeline(viper.GetString("pipeline"))
	if err != nil {
		return err
	}

	f, err := os.Open(finalizeFlags.sample)
	if err != nil {
		return fmt.Errorf("opening sample: %w", err)
	}
	defer f.Close()

	sample, err := tune.ReadCSV(f)
	if err != nil {
		return fmt.Errorf("reading sample: %w", err)
	}

	set, err := tune.Build(stages...)
	if err != nil {
		return fmt.Errorf("building parameter set: %w", err)
	}

	resolved, err := tune.Finalize(tune.FinalizeConfig{Logger: logger}, set, stages, sample)
	if err != nil {
		return fmt.Errorf("finalizing: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Sample: %s rows x %d columns, %d of %d parameters were data-dependent\n",
		humanize.Comma(int64(sample.Rows())), sample.Columns(),
		len(set.Unresolved()), set.Len())
	fmt.Fprintln(out, renderSet(resolved))
	return nil
}
