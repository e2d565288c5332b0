// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/polykit/macaulay/monomial"
)

// monomialsCmd enumerates exponent tuples for a given dimension and degree.
var monomialsCmd = &cobra.Command{
	Use:   "monomials DIM DEGREE",
	Short: "Enumerate monomial exponent tuples.",
	Long: `Enumerate the exponent tuples of DIM variables with total degree
up to DEGREE (or exactly DEGREE with --exact), one tuple per line.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)

		dim := parsePositiveInt(args[0], "DIM")
		degree := parseNonNegativeInt(args[1], "DEGREE")
		exact := getFlag(cmd, "exact")

		log.Debugf("enumerating monomials: dim=%d degree=%d exact=%t", dim, degree, exact)

		if getFlag(cmd, "count") {
			count, err := countMonomials(dim, degree, exact)
			if err != nil {
				fail(err)
			}

			fmt.Println(count)

			return
		}

		terms, err := enumerateMonomials(dim, degree, exact)
		if err != nil {
			fail(err)
		}

		if getFlag(cmd, "sort") {
			if err := monomial.Sort(terms); err != nil {
				fail(err)
			}
		}

		for _, t := range terms {
			fmt.Println(t)
		}
	},
}

func enumerateMonomials(dim, degree int, exact bool) ([]monomial.Term, error) {
	if exact {
		return monomial.Exact(dim, degree)
	}

	return monomial.UpTo(dim, degree)
}

func countMonomials(dim, degree int, exact bool) (int64, error) {
	if exact {
		return monomial.CountExact(dim, degree)
	}

	return monomial.CountUpTo(dim, degree)
}

func parsePositiveInt(s, name string) int {
	n := parseNonNegativeInt(s, name)
	if n < 1 {
		fail(fmt.Errorf("%s must be at least 1, got %d", name, n))
	}

	return n
}

func parseNonNegativeInt(s, name string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		fail(fmt.Errorf("%s must be a non-negative integer, got %q", name, s))
	}

	return n
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func init() {
	rootCmd.AddCommand(monomialsCmd)

	monomialsCmd.Flags().Bool("exact", false, "enumerate tuples of exactly DEGREE instead of up to it")
	monomialsCmd.Flags().Bool("sort", false, "emit tuples in ascending grevlex order")
	monomialsCmd.Flags().Bool("count", false, "print only the number of tuples")
}
