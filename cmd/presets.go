package cmd

import (
	"bytes"
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/qlbm-go/qlbm/lattice"
)

// defaultPreset is the lattice used when neither --config nor --preset is given.
const defaultPreset = "cqlbm-example"

//go:embed presets.yaml
var presetsYAML []byte

// PresetsFile represents the full presets.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type PresetsFile struct {
	Version string                    `yaml:"version"`
	Presets map[string]lattice.Config `yaml:"presets"`
}

// loadPresets parses the embedded presets with strict field checking.
func loadPresets() (*PresetsFile, error) {
	var f PresetsFile
	decoder := yaml.NewDecoder(bytes.NewReader(presetsYAML))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing embedded presets: %w", err)
	}
	return &f, nil
}

// presetNames returns the embedded preset names in sorted order.
func presetNames() ([]string, error) {
	f, err := loadPresets()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(f.Presets))
	for name := range f.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// lookupPreset returns a copy of the named preset configuration.
func lookupPreset(name string) (*lattice.Config, error) {
	f, err := loadPresets()
	if err != nil {
		return nil, err
	}
	cfg, ok := f.Presets[name]
	if !ok {
		names, _ := presetNames()
		return nil, fmt.Errorf("unknown preset %q; valid: %s", name, strings.Join(names, ", "))
	}
	return cfg.Clone(), nil
}
