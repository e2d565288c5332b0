// SPDX-License-Identifier: MIT
package cli

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/polykit/macaulay/tensor"
)

// normalizeCmd cleans and row-reorders a matrix stored as a JSON 2-D array.
var normalizeCmd = &cobra.Command{
	Use:   "normalize FILE",
	Short: "Clean near-zero noise and reorder matrix rows.",
	Long: `Read a matrix from FILE as a JSON array of rows, zero out entries
below the cleaning tolerance, reorder rows by their leading-nonzero
column, and write the result to stdout as JSON.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)

		mat := readMatrixFile(args[0])

		tol := getFloat(cmd, "tol")
		if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
			fail(fmt.Errorf("--tol must be finite and non-negative, got %v", tol))
		}

		opts := []tensor.Option{tensor.WithTolerance(tol)}

		switch policy := getString(cmd, "zero-rows"); policy {
		case "last":
			opts = append(opts, tensor.WithZeroRowsLast())
		case "error":
			opts = append(opts, tensor.WithZeroRowsRejected())
		default:
			fail(fmt.Errorf("unknown --zero-rows policy %q (want last or error)", policy))
		}

		rows, _ := mat.Rows()
		cols, _ := mat.Cols()
		log.Debugf("normalizing %dx%d matrix from %s", rows, cols, args[0])

		if _, err := tensor.Clean(mat, opts...); err != nil {
			fail(err)
		}

		swapped, err := tensor.RowSwap(mat, opts...)
		if err != nil {
			fail(err)
		}

		writeMatrix(swapped)
	},
}

// readMatrixFile parses FILE as a JSON array of float64 rows and wraps
// it in a rank-2 tensor. Any parse or shape problem is fatal.
func readMatrixFile(filename string) *tensor.Tensor {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		fail(err)
	}

	var rows [][]float64
	if err := json.Unmarshal(bytes, &rows); err != nil {
		fail(fmt.Errorf("parsing %s: %w", filename, err))
	}

	mat, err := tensor.FromRows(rows)
	if err != nil {
		fail(fmt.Errorf("parsing %s: %w", filename, err))
	}

	return mat
}

func writeMatrix(mat *tensor.Tensor) {
	rows, err := mat.ToRows()
	if err != nil {
		fail(err)
	}

	out, err := json.Marshal(rows)
	if err != nil {
		fail(err)
	}

	fmt.Println(string(out))
}

func init() {
	rootCmd.AddCommand(normalizeCmd)

	normalizeCmd.Flags().Float64("tol", tensor.DefaultCleanTolerance, "magnitude below which entries are zeroed")
	normalizeCmd.Flags().String("zero-rows", "last", "placement policy for all-zero rows (last or error)")
}
