package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/qlbm-go/qlbm/lattice"
)

// validateFiles checks every config file and reports one line per file.
// It returns the number of invalid files.
func validateFiles(w io.Writer, paths []string) int {
	failed := 0
	for _, path := range paths {
		l, err := lattice.NewCollisionlessLatticeFromFile(path)
		if err != nil {
			fmt.Fprintf(w, "FAIL %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Fprintf(w, "ok   %s: %s\n", path, l)
	}
	return failed
}

// validateCmd loads and validates lattice configurations
var validateCmd = &cobra.Command{
	Use:   "validate [config files...]",
	Short: "Load and validate lattice configurations",
	Long:  "Validates each config file given as an argument, or the --config/--preset lattice when none are given. Exits with status 1 if any is invalid.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			l, name, err := buildLattice(configPath, presetName)
			if err != nil {
				logrus.Fatalf("Invalid lattice: %v", err)
			}
			fmt.Printf("ok   %s: %s\n", name, l)
			return
		}
		if failed := validateFiles(os.Stdout, args); failed > 0 {
			logrus.Errorf("%d of %d config(s) invalid", failed, len(args))
			os.Exit(1)
		}
	},
}

func init() {
	addLatticeFlags(validateCmd)
	rootCmd.AddCommand(validateCmd)
}
