package balloon

import (
	"encoding/hex"
	"fmt"

	"github.com/opd-ai/go-balloon/internal/digest"
)

// InvalidParameterError reports that a cost parameter was zero. The
// Balloon construction accepts every other input (including empty
// password and salt); once parameters validate, it fails only when
// Config.Digest is not a known digest.Kind.
type InvalidParameterError struct {
	Field string
	Value uint64
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("balloon: invalid parameter %s = %d: must be >= 1", e.Field, e.Value)
}

// Config carries every tunable parameter of the Balloon construction,
// plus the choice of underlying digest.
type Config struct {
	// SpaceCost is the number of blocks held in the buffer.
	SpaceCost uint64
	// TimeCost is the number of mix rounds.
	TimeCost uint64
	// ParallelCost is the number of independent lanes; used only by
	// HashM/HashMHex/VerifyM.
	ParallelCost uint64
	// Delta is the number of pseudo-random dependencies mixed into each
	// block per round.
	Delta uint64
	// Digest selects the underlying cryptographic digest. The zero value
	// is digest.SHA256.
	Digest digest.Kind
}

// String renders cfg for debug and log output.
func (c Config) String() string {
	return fmt.Sprintf("Config{SpaceCost:%d TimeCost:%d ParallelCost:%d Delta:%d Digest:%s}",
		c.SpaceCost, c.TimeCost, c.ParallelCost, c.Delta, c.Digest)
}

// Validate checks that every cost parameter used by cfg is non-zero.
// requireParallel should be true for callers that will use
// cfg.ParallelCost (HashM/VerifyM), false otherwise.
func (c Config) Validate(requireParallel bool) error {
	if c.SpaceCost == 0 {
		return &InvalidParameterError{Field: "SpaceCost", Value: c.SpaceCost}
	}
	if c.TimeCost == 0 {
		return &InvalidParameterError{Field: "TimeCost", Value: c.TimeCost}
	}
	if c.Delta == 0 {
		return &InvalidParameterError{Field: "Delta", Value: c.Delta}
	}
	if requireParallel && c.ParallelCost == 0 {
		return &InvalidParameterError{Field: "ParallelCost", Value: c.ParallelCost}
	}
	return nil
}

// DefaultConfig returns the "friendly wrapper" defaults for single-core
// Balloon hashing: space_cost=16, time_cost=20, delta=4, SHA-256.
func DefaultConfig() Config {
	return Config{SpaceCost: 16, TimeCost: 20, Delta: 4, Digest: digest.SHA256}
}

// DefaultConfigM returns the "friendly wrapper" defaults for M-core
// Balloon hashing: space_cost=16, time_cost=20, parallel_cost=4, delta=4,
// SHA-256.
func DefaultConfigM() Config {
	cfg := DefaultConfig()
	cfg.ParallelCost = 4
	return cfg
}

// Hash computes the raw Balloon digest of password under salt, per cfg.
// It runs strictly sequentially: single thread, no internal parallelism,
// no suspension points. Parallelising the inner loops would defeat the
// memory-hardness the algorithm is designed to provide.
func Hash(password, salt []byte, cfg Config) (Block, error) {
	if err := cfg.Validate(false); err != nil {
		return nil, err
	}

	buf := make([]Block, cfg.SpaceCost)
	seed, err := digest.H(cfg.Digest, uint64(0), password, salt)
	if err != nil {
		return nil, err
	}
	buf[0] = seed
	cnt := uint64(1)

	cnt, err = expand(buf, cnt, cfg.SpaceCost, cfg.Digest)
	if err != nil {
		return nil, err
	}

	if err := mix(buf, cnt, cfg.Delta, salt, cfg.SpaceCost, cfg.TimeCost, cfg.Digest); err != nil {
		return nil, err
	}

	out := append(Block(nil), buf[cfg.SpaceCost-1]...)
	zeroizeBlocks(buf)
	return out, nil
}

// HashHex computes the Balloon digest with DefaultConfig and returns it
// as lowercase hex.
func HashHex(password, salt []byte) (string, error) {
	digestBytes, err := Hash(password, salt, DefaultConfig())
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(digestBytes), nil
}
