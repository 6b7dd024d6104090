package cmd

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/qlbm-go/qlbm/lattice"
)

var normalizeOnConvert bool // Apply legacy boundary upgrades before writing

// writeCanonicalConfig validates cfg and writes it as canonical YAML.
func writeCanonicalConfig(w io.Writer, cfg *lattice.Config, normalize bool) error {
	if normalize {
		cfg.Normalize()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := cfg.MarshalCanonicalYAML()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// convertCmd re-emits a lattice configuration as canonical YAML
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a lattice config (YAML, JSON, HCL or preset) to canonical YAML",
	Long:  "Reads --config in any supported format (or an embedded --preset) and writes canonical YAML to stdout for piping.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, name, err := resolveConfig(configPath, presetName)
		if err != nil {
			logrus.Fatalf("Conversion failed: %v", err)
		}
		if err := writeCanonicalConfig(os.Stdout, cfg, normalizeOnConvert); err != nil {
			logrus.Fatalf("Conversion of %s failed: %v", name, err)
		}
	},
}

func init() {
	addLatticeFlags(convertCmd)
	convertCmd.Flags().BoolVar(&normalizeOnConvert, "normalize", true, "Upgrade legacy boundary spellings and fill missing boundaries")
	rootCmd.AddCommand(convertCmd)
}
