package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	// Registers the mpl, svg and html draw backends.
	_ "github.com/qlbm-go/qlbm/draw/mpl"
	"github.com/qlbm-go/qlbm/lattice"
)

var (
	logLevel   string // Log verbosity level
	configPath string // Lattice configuration file (.yaml, .yml, .json, .hcl)
	presetName string // Embedded preset name, used when no config file is given
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "qlbm",
	Short: "Collisionless quantum lattice Boltzmann lattices, components and drawings",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addLatticeFlags registers the flags that select a lattice.
func addLatticeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configPath, "config", "", "Path to a lattice config (.yaml, .yml, .json or .hcl)")
	cmd.Flags().StringVar(&presetName, "preset", "", fmt.Sprintf("Embedded lattice preset (default %q when --config is not set)", defaultPreset))
	cmd.MarkFlagsMutuallyExclusive("config", "preset")
}

// resolveConfig returns the configuration selected by --config or --preset
// together with a display name for it.
func resolveConfig(path, preset string) (*lattice.Config, string, error) {
	if path != "" {
		cfg, err := lattice.LoadConfig(path)
		if err != nil {
			return nil, "", err
		}
		return cfg, path, nil
	}
	if preset == "" {
		preset = defaultPreset
		logrus.Infof("No --config given; using preset %q", preset)
	}
	cfg, err := lookupPreset(preset)
	if err != nil {
		return nil, "", err
	}
	return cfg, preset, nil
}

// buildLattice resolves and builds the selected lattice.
func buildLattice(path, preset string) (*lattice.CollisionlessLattice, string, error) {
	cfg, name, err := resolveConfig(path, preset)
	if err != nil {
		return nil, "", err
	}
	l, err := lattice.NewCollisionlessLattice(cfg)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", name, err)
	}
	return l, name, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
}
