package lattice

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Format identifies a configuration file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatHCL  Format = "hcl"
)

// formatsByExt maps file extensions to configuration formats.
var formatsByExt = map[string]Format{
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".json": FormatJSON,
	".hcl":  FormatHCL,
}

// BoundaryCondition names how particles interact with an obstacle edge.
type BoundaryCondition string

const (
	// BoundarySpecular reflects the velocity component normal to the wall.
	BoundarySpecular BoundaryCondition = "specular"
	// BoundaryBounceBack reverses every velocity component.
	BoundaryBounceBack BoundaryCondition = "bounceback"
)

// validBoundaries is the set of recognized boundary condition names.
var validBoundaries = map[BoundaryCondition]bool{
	BoundarySpecular:   true,
	BoundaryBounceBack: true,
}

// boundaryAliases maps legacy spellings to canonical boundary names.
var boundaryAliases = map[string]BoundaryCondition{
	"bounce-back": BoundaryBounceBack,
	"bounce_back": BoundaryBounceBack,
}

// IsValidBoundary reports whether name is a recognized boundary condition.
func IsValidBoundary(name string) bool {
	return validBoundaries[BoundaryCondition(name)]
}

// Config is the top-level lattice configuration.
// Loaded from YAML, JSON or HCL via LoadConfig(path).
type Config struct {
	Lattice  LatticeSpec `yaml:"lattice" json:"lattice"`
	Geometry []BlockSpec `yaml:"geometry,omitempty" json:"geometry,omitempty"`
}

// LatticeSpec sizes the grid and the discrete velocity space per axis.
type LatticeSpec struct {
	Dim        map[string]int `yaml:"dim" json:"dim"`
	Velocities map[string]int `yaml:"velocities" json:"velocities"`
}

// BlockSpec is one obstacle: an inclusive [lo, hi] range per axis and a boundary condition.
type BlockSpec struct {
	X        []int  `yaml:"x,omitempty,flow" json:"x,omitempty"`
	Y        []int  `yaml:"y,omitempty,flow" json:"y,omitempty"`
	Z        []int  `yaml:"z,omitempty,flow" json:"z,omitempty"`
	Boundary string `yaml:"boundary" json:"boundary"`
}

// Range returns the raw range given for axis, or nil when absent.
func (b BlockSpec) Range(axis Axis) []int {
	switch axis {
	case AxisX:
		return b.X
	case AxisY:
		return b.Y
	case AxisZ:
		return b.Z
	}
	return nil
}

// FormatForPath infers the configuration format from a file extension.
func FormatForPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := formatsByExt[ext]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w for %q; valid extensions: .yaml, .yml, .json, .hcl", ErrUnknownFormat, path)
}

// LoadConfig reads and parses a lattice configuration file.
// The format is inferred from the extension. Unrecognized keys are rejected.
func LoadConfig(path string) (*Config, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lattice config: %w", err)
	}
	return parseConfig(data, format, filepath.Base(path))
}

// ParseConfig decodes a lattice configuration in the given format.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func ParseConfig(data []byte, format Format) (*Config, error) {
	return parseConfig(data, format, "lattice."+string(format))
}

func parseConfig(data []byte, format Format, filename string) (*Config, error) {
	var cfg Config
	switch format {
	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parsing lattice config: %w", err)
		}
		var extra yaml.Node
		if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing lattice config: expected a single YAML document")
		}
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parsing lattice config: %w", err)
		}
		if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing lattice config: trailing data after JSON object")
		}
	case FormatHCL:
		if err := decodeHCL(data, filename, &cfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w %q; valid: yaml, json, hcl", ErrUnknownFormat, format)
	}
	return &cfg, nil
}

// Normalize upgrades legacy geometry entries in place.
// A block without a boundary defaults to specular; hyphenated or underscored
// bounce-back spellings map to "bounceback". Idempotent.
// Emits logrus.Warn notices for every rewritten entry.
func (c *Config) Normalize() {
	for i := range c.Geometry {
		b := &c.Geometry[i]
		if b.Boundary == "" {
			logrus.Warnf("geometry[%d]: no boundary given; defaulting to %q", i, BoundarySpecular)
			b.Boundary = string(BoundarySpecular)
			continue
		}
		if canonical, ok := boundaryAliases[b.Boundary]; ok {
			logrus.Warnf("geometry[%d]: deprecated boundary %q auto-mapped to %q", i, b.Boundary, canonical)
			b.Boundary = string(canonical)
		}
	}
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	out := &Config{
		Lattice: LatticeSpec{
			Dim:        make(map[string]int, len(c.Lattice.Dim)),
			Velocities: make(map[string]int, len(c.Lattice.Velocities)),
		},
	}
	for k, v := range c.Lattice.Dim {
		out.Lattice.Dim[k] = v
	}
	for k, v := range c.Lattice.Velocities {
		out.Lattice.Velocities[k] = v
	}
	if c.Geometry != nil {
		out.Geometry = make([]BlockSpec, len(c.Geometry))
		for i, b := range c.Geometry {
			out.Geometry[i] = BlockSpec{
				X:        append([]int(nil), b.X...),
				Y:        append([]int(nil), b.Y...),
				Z:        append([]int(nil), b.Z...),
				Boundary: b.Boundary,
			}
		}
	}
	return out
}

// MarshalCanonicalYAML renders the configuration as YAML with sorted map keys.
func (c *Config) MarshalCanonicalYAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshalling lattice config: %w", err)
	}
	return data, nil
}
