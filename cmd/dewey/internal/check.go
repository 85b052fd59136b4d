package internal

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gottox/dewey/internal/check"
	"github.com/Gottox/dewey/pkgs/scheme"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Run the all-pairs regression harness over a fixture list",
	Long: `Check reads newline-delimited version strings from a file or stdin and
compares every pair both ways, verifying that the comparator always
returns a result, is reflexive, and is antisymmetric. Incomparable
pairs are counted but are not failures.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

var checkScheme string

func init() {
	checkCmd.Flags().StringVarP(&checkScheme, "scheme", "s", scheme.Default, "Version ordering scheme (dewey, gnu, semver)")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cmp, err := scheme.Lookup(checkScheme)
	if err != nil {
		return err
	}

	versions, err := readVersions(args)
	if err != nil {
		return err
	}

	result, err := check.AllPairs(context.Background(), versions, cmp)
	if err != nil {
		return fmt.Errorf("failed to run harness: %w", err)
	}

	fmt.Printf("%d versions, %d pairs, %d incomparable\n", len(versions), result.Pairs, result.Incomparable)
	for _, d := range result.Divergences {
		fmt.Printf("divergence: %q vs %q: forward %s, backward %s\n", d.V1, d.V2, d.Forward, d.Backward)
	}
	if n := len(result.Divergences); n > 0 {
		return fmt.Errorf("%d divergences found", n)
	}
	return nil
}
