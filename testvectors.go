package balloon

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
)

// Vector represents a single Balloon hashing test case, either
// single-core or M-core depending on whether Parallel is non-zero.
type Vector struct {
	Name      string `json:"name"`
	Password  string `json:"password"`
	Salt      string `json:"salt"`
	SpaceCost uint64 `json:"space_cost"`
	TimeCost  uint64 `json:"time_cost"`
	Parallel  uint64 `json:"parallel_cost,omitempty"`
	Delta     uint64 `json:"delta"`
	Expected  string `json:"expected"`
}

// VectorSuite is a named collection of test vectors, loaded from JSON.
type VectorSuite struct {
	Description string   `json:"description"`
	Vectors     []Vector `json:"vectors"`
}

// LoadVectors loads a VectorSuite from a JSON file.
func LoadVectors(path string) (*VectorSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read test vectors: %w", err)
	}

	var suite VectorSuite
	if err := json.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("failed to parse test vectors: %w", err)
	}
	return &suite, nil
}

// Config builds the Config this vector's parameters describe.
func (v Vector) Config() Config {
	return Config{
		SpaceCost:    v.SpaceCost,
		TimeCost:     v.TimeCost,
		ParallelCost: v.Parallel,
		Delta:        v.Delta,
		Digest:       0, // SHA-256, the only digest the fixed vectors assume
	}
}

// ExpectedBytes decodes v.Expected from hex.
func (v Vector) ExpectedBytes() ([]byte, error) {
	b, err := hex.DecodeString(v.Expected)
	if err != nil {
		return nil, fmt.Errorf("invalid expected hex in vector %q: %w", v.Name, err)
	}
	return b, nil
}
