package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/shanehull/dateaug/internal/dateformat"
)

var (
	reformatFormat string
	keepMonth      bool
	keepDay        bool
	reformatCount  int
	reformatSeed   uint64
)

var reformatCmd = &cobra.Command{
	Use:     `reformat "<Month> <Day>, <Year>"`,
	Short:   "Print randomly reformatted versions of a date",
	Example: `  dateaug reformat "May 2, 2004" --count 3 --keep-month`,
	Args:    cobra.ExactArgs(1),
	RunE:    runReformat,
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the date formats reformat chooses from",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, f := range dateformat.Formats() {
			fmt.Fprintln(cmd.OutOrStdout(), f)
		}
		return nil
	},
}

func init() {
	reformatCmd.Flags().StringVarP(&reformatFormat, "format", "f", "", "Output format (see 'dateaug formats'); default: random")
	reformatCmd.Flags().BoolVar(&keepMonth, "keep-month", false, "Keep the original month")
	reformatCmd.Flags().BoolVar(&keepDay, "keep-day", false, "Keep the original day")
	reformatCmd.Flags().IntVarP(&reformatCount, "count", "n", 1, "Number of dates to print")
	reformatCmd.Flags().Uint64Var(&reformatSeed, "seed", 0, "Random seed (0 picks one)")
}

func runReformat(cmd *cobra.Command, args []string) error {
	if reformatFormat != "" && !lo.Contains(dateformat.Formats(), reformatFormat) {
		return fmt.Errorf("%w: %q", dateformat.ErrUnknownFormat, reformatFormat)
	}
	if reformatCount < 1 {
		return fmt.Errorf("count must be positive, got %d", reformatCount)
	}

	s := reformatSeed
	if s == 0 {
		s = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(s, 0))

	opts := dateformat.Options{
		ChangeMonth: !keepMonth,
		ChangeDay:   !keepDay,
		Format:      reformatFormat,
	}

	for range reformatCount {
		out, err := dateformat.Reformat(args[0], opts, rng)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	return nil
}
