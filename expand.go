package balloon

import "github.com/opd-ai/go-balloon/internal/digest"

// expand fills buf, which on entry holds exactly one seed Block at
// position 0, with spaceCost blocks total by hash-chaining forward. It
// returns the counter value after the chain, ready to be handed to mix.
//
// space_cost == 1 is a valid edge case: the loop below does not execute
// and cnt is returned unchanged.
func expand(buf []Block, cnt uint64, spaceCost uint64, k digest.Kind) (uint64, error) {
	for s := uint64(1); s < spaceCost; s++ {
		block, err := digest.H(k, cnt, []byte(buf[s-1]))
		if err != nil {
			return 0, err
		}
		buf[s] = block
		cnt++
	}
	return cnt, nil
}
