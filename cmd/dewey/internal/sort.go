package internal

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Gottox/dewey"
	"github.com/Gottox/dewey/internal/fixture"
	"github.com/Gottox/dewey/pkgs/scheme"
)

var sortCmd = &cobra.Command{
	Use:   "sort [file]",
	Short: "Sort a list of version strings",
	Long: `Sort reads newline-delimited version strings from a file or stdin and
prints them in ascending order under the chosen scheme.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSort,
}

var sortScheme string

func init() {
	sortCmd.Flags().StringVarP(&sortScheme, "scheme", "s", scheme.Default, "Version ordering scheme (dewey, gnu, semver)")
	rootCmd.AddCommand(sortCmd)
}

func runSort(cmd *cobra.Command, args []string) error {
	cmp, err := scheme.Lookup(sortScheme)
	if err != nil {
		return err
	}

	versions, err := readVersions(args)
	if err != nil {
		return err
	}

	sortWith(cmp, versions)
	for _, v := range versions {
		fmt.Println(v)
	}
	return nil
}

// readVersions loads the version list from the file argument, or from
// stdin when no file is given.
func readVersions(args []string) ([]string, error) {
	if len(args) == 1 {
		versions, err := fixture.Parse(args[0], nil)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return versions, nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return fixture.Parse("", data)
}

// sortWith sorts versions in place under cmp. The dewey ordering is
// partial, so incomparable pairs fall back to plain byte order to keep
// the result deterministic; the library itself never totalizes.
func sortWith(cmp dewey.Comparator, list []string) {
	sort.SliceStable(list, func(i, j int) bool {
		switch cmp(list[i], list[j]) {
		case dewey.Less:
			return true
		case dewey.Incomparable:
			return list[i] < list[j]
		}
		return false
	})
}
