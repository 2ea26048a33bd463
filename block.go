// Package balloon implements Balloon hashing, the memory-hard password
// hashing function of Boneh, Corrigan-Gibbs, and Schechter (2016).
//
// The construction fills a buffer of space_cost blocks with a seeded hash
// chain (expand), then runs time_cost rounds of dependent and
// pseudo-random rereferencing mixing over the buffer (mix), and finally
// returns the buffer's last block (extract). The parallel M-core variant
// runs parallel_cost independent instances over per-lane salts and
// XOR-combines their outputs.
//
// Example usage:
//
//	digest, err := balloon.Hash([]byte("hunter42"), []byte("examplesalt"), balloon.Config{
//	    SpaceCost: 1024,
//	    TimeCost:  3,
//	    Delta:     3,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	hex.EncodeToString(digest)
package balloon

import (
	"crypto/subtle"

	"github.com/opd-ai/go-balloon/internal/digest"
)

// Block is a fixed-length byte sequence equal in length to the underlying
// digest's output. Blocks are the unit stored in the buffer.
type Block = digest.Block

// XOR returns the fixed-width XOR of a and b. The result length is
// max(len(a), len(b)); the shorter operand is left-padded with zero bytes
// up to the longer's length before the byte-wise XOR. In the Balloon
// construction every XOR operand is an equal-length Block, so no padding
// takes place.
func XOR(a, b []byte) []byte {
	if len(a) == len(b) {
		out := make([]byte, len(a))
		subtle.XORBytes(out, a, b)
		return out
	}

	longer, shorter := a, b
	if len(shorter) > len(longer) {
		longer, shorter = shorter, longer
	}

	// Pad the shorter operand with leading zero bytes up to the longer's
	// length, then XOR byte-wise. This path is never
	// exercised by the Balloon construction itself, whose XOR operands
	// are always equal-length Blocks.
	padded := make([]byte, len(longer))
	copy(padded[len(longer)-len(shorter):], shorter)

	out := make([]byte, len(longer))
	subtle.XORBytes(out, longer, padded)
	return out
}

// zeroize best-effort scrubs buf. Not a security guarantee, since the Go
// garbage collector may have already copied the backing array elsewhere,
// but it costs nothing and matches the corpus's routine hygiene for
// buffers that held sensitive material.
func zeroize(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}

func zeroizeBlocks(buf []Block) {
	for i := range buf {
		zeroize(buf[i])
	}
}
