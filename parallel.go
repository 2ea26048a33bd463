package balloon

import (
	"encoding/hex"
	"sync"

	"github.com/opd-ai/go-balloon/internal/digest"
)

// HashM computes the parallel M-core Balloon digest: parallel_cost
// independent Balloon instances run over per-lane salts, are XOR-combined,
// and finalized with one more digest of (password, salt, combined).
//
// Lanes share no mutable state and may run concurrently; the combine step
// is commutative and associative, so lane completion order does not
// affect the result. A single lane's failure is fatal to the whole call:
// no partial result is ever returned.
func HashM(password, salt []byte, cfg Config) (Block, error) {
	if err := cfg.Validate(true); err != nil {
		return nil, err
	}

	lanes := make([]Block, cfg.ParallelCost)
	errs := make([]error, cfg.ParallelCost)

	var wg sync.WaitGroup
	wg.Add(int(cfg.ParallelCost))
	for p := uint64(0); p < cfg.ParallelCost; p++ {
		go func(p uint64) {
			defer wg.Done()
			laneSalt := append(append([]byte(nil), salt...), digest.LE8(p+1)...)
			out, err := Hash(password, laneSalt, Config{
				SpaceCost: cfg.SpaceCost,
				TimeCost:  cfg.TimeCost,
				Delta:     cfg.Delta,
				Digest:    cfg.Digest,
			})
			lanes[p] = out
			errs[p] = err
		}(p)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	combined := lanes[0]
	for _, lane := range lanes[1:] {
		combined = XOR(combined, lane)
	}

	out, err := digest.H(cfg.Digest, password, salt, []byte(combined))
	if err != nil {
		return nil, err
	}
	return out, nil
}

// HashMHex computes the M-core Balloon digest with DefaultConfigM and
// returns it as lowercase hex.
func HashMHex(password, salt []byte) (string, error) {
	digestBytes, err := HashM(password, salt, DefaultConfigM())
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(digestBytes), nil
}
