package balloon

import (
	"math/big"

	"github.com/opd-ai/go-balloon/internal/digest"
)

// mix performs timeCost rounds of dependent and pseudo-random
// rereferencing mixing over buf, per delta dependencies per block per
// round. It mutates buf in place.
//
// The counter increment schedule below is normative: idx_block does not
// consume a counter value, only the two H(cnt, ...) calls per inner-loop
// iteration do. Deviating from this schedule changes every output, since
// cnt is folded into nearly every hash input.
func mix(buf []Block, cnt uint64, delta uint64, salt []byte, spaceCost, timeCost uint64, k digest.Kind) error {
	for t := uint64(0); t < timeCost; t++ {
		for s := uint64(0); s < spaceCost; s++ {
			prev := (s + spaceCost - 1) % spaceCost // wraps to spaceCost-1 when s == 0

			block, err := digest.H(k, cnt, []byte(buf[prev]), []byte(buf[s]))
			if err != nil {
				return err
			}
			buf[s] = block
			cnt++

			for i := uint64(0); i < delta; i++ {
				idxBlock, err := digest.H(k, t, s, i) // cnt not consumed here
				if err != nil {
					return err
				}

				otherRaw, err := digest.H(k, cnt, salt, []byte(idxBlock))
				if err != nil {
					return err
				}
				cnt++

				other := decodeLE(otherRaw, spaceCost)

				block, err := digest.H(k, cnt, []byte(buf[s]), []byte(buf[other]))
				if err != nil {
					return err
				}
				buf[s] = block
				cnt++
			}
		}
	}
	return nil
}

// decodeLE interprets raw as an unsigned little-endian integer of
// arbitrary width and reduces it modulo spaceCost. The full block width
// is used; truncating to a machine word would not match the reference
// construction's arbitrary-precision reduction.
func decodeLE(raw []byte, spaceCost uint64) uint64 {
	be := make([]byte, len(raw))
	for i, b := range raw {
		be[len(raw)-1-i] = b
	}
	n := new(big.Int).SetBytes(be)
	mod := new(big.Int).SetUint64(spaceCost)
	return new(big.Int).Mod(n, mod).Uint64()
}
