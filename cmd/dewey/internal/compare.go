package internal

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Gottox/dewey"
	"github.com/Gottox/dewey/pkgs/scheme"
)

var compareCmd = &cobra.Command{
	Use:   "compare <v1> <v2>",
	Short: "Compare two version strings",
	Long: `Compare prints the ordering between two version strings: "<", "=", ">",
or "?" when the two are incomparable.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

var (
	compareScheme string
	compareQuiet  bool
)

func init() {
	compareCmd.Flags().StringVarP(&compareScheme, "scheme", "s", scheme.Default, "Version ordering scheme (dewey, gnu, semver)")
	compareCmd.Flags().BoolVarP(&compareQuiet, "quiet", "q", false, "Suppress output and communicate via exit code (0 equal, 1 less, 2 greater, 3 incomparable)")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	cmp, err := scheme.Lookup(compareScheme)
	if err != nil {
		return err
	}

	result := cmp(args[0], args[1])
	if compareQuiet {
		os.Exit(exitCode(result))
	}

	fmt.Printf("%s %s %s\n", args[0], result, args[1])
	return nil
}

func exitCode(o dewey.Order) int {
	switch o {
	case dewey.Equal:
		return 0
	case dewey.Less:
		return 1
	case dewey.Greater:
		return 2
	}
	return 3
}
