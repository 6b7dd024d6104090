package lattice

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// hclConfigFile is the top-level structure of an HCL lattice file:
//
//	lattice {
//	  dim        = { x = 8, y = 8 }
//	  velocities = { x = 4, y = 4 }
//	}
//
//	block {
//	  x        = [5, 6]
//	  y        = [1, 2]
//	  boundary = "specular"
//	}
type hclConfigFile struct {
	Lattice hclLattice `hcl:"lattice,block"`
	Blocks  []hclBlock `hcl:"block,block"`
}

type hclLattice struct {
	Dim        map[string]int `hcl:"dim"`
	Velocities map[string]int `hcl:"velocities"`
}

type hclBlock struct {
	X        []int  `hcl:"x,optional"`
	Y        []int  `hcl:"y,optional"`
	Z        []int  `hcl:"z,optional"`
	Boundary string `hcl:"boundary,optional"`
}

// decodeHCL parses an HCL document into cfg.
func decodeHCL(data []byte, filename string, cfg *Config) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return fmt.Errorf("parsing lattice config %s: %w", filename, diags)
	}

	var parsed hclConfigFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return fmt.Errorf("decoding lattice config %s: %w", filename, diags)
	}

	cfg.Lattice = LatticeSpec{Dim: parsed.Lattice.Dim, Velocities: parsed.Lattice.Velocities}
	for _, b := range parsed.Blocks {
		cfg.Geometry = append(cfg.Geometry, BlockSpec{X: b.X, Y: b.Y, Z: b.Z, Boundary: b.Boundary})
	}
	return nil
}
