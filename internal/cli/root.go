// SPDX-License-Identifier: MIT
// Package cli wires the macaulay command-line surface: a cobra root
// command plus subcommands for monomial enumeration and matrix
// normalization. All numeric work happens in the library packages;
// this package only parses flags, moves bytes, and sets log levels.
package cli

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "macaulay",
	Short: "Monomial-ordering and matrix-preparation toolbox.",
	Long: `A toolbox for the linear-algebra front half of Macaulay-style
multivariate root solvers: grevlex monomial enumeration and
numeric matrix normalization (zero cleaning, row reordering).`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
}

// configureLogging applies the persistent --verbose flag. Every
// subcommand calls it first so debug output covers flag parsing too.
func configureLogging(cmd *cobra.Command) {
	if getFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// Get an expected bool flag, or exit if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected string flag, or exit if an error arises.
func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected float flag, or exit if an error arises.
func getFloat(cmd *cobra.Command, flag string) float64 {
	r, err := cmd.Flags().GetFloat64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}
