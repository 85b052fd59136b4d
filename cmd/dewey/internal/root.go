package internal

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dewey",
	Short: "dewey compares package version strings",
	Long: `dewey compares package version strings under the dewey ordering scheme
used by pkgsrc- and xbps-style package managers. Versions following
structurally different schemes compare as incomparable rather than being
forced into an arbitrary order.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}
