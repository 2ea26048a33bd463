// Package digest provides the HashPrimitive adapter shared by the balloon
// package: a uniform interface to a selectable underlying cryptographic
// digest, plus the concatenation-then-digest helper the Balloon
// construction calls at every step of expand and mix.
package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
)

// Kind selects the underlying cryptographic digest used by the Balloon
// construction. The zero value is SHA256, matching the reference test
// vectors.
type Kind int

const (
	// SHA256 is the default digest; H_LEN = 32.
	SHA256 Kind = iota
	MD5
	SHA1
	SHA224
	SHA384
	SHA512
	SHA512_224
	SHA512_256
	SHA3_224
	SHA3_256
	SHA3_384
	SHA3_512
	BLAKE2s256
	BLAKE2b512
)

// String returns the name of the digest.
func (k Kind) String() string {
	switch k {
	case SHA256:
		return "SHA256"
	case MD5:
		return "MD5"
	case SHA1:
		return "SHA1"
	case SHA224:
		return "SHA224"
	case SHA384:
		return "SHA384"
	case SHA512:
		return "SHA512"
	case SHA512_224:
		return "SHA512/224"
	case SHA512_256:
		return "SHA512/256"
	case SHA3_224:
		return "SHA3-224"
	case SHA3_256:
		return "SHA3-256"
	case SHA3_384:
		return "SHA3-384"
	case SHA3_512:
		return "SHA3-512"
	case BLAKE2s256:
		return "BLAKE2s-256"
	case BLAKE2b512:
		return "BLAKE2b-512"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// New returns a fresh hash.Hash instance for the digest.
func (k Kind) New() (hash.Hash, error) {
	switch k {
	case SHA256:
		return sha256.New(), nil
	case MD5:
		return md5.New(), nil
	case SHA1:
		return sha1.New(), nil
	case SHA224:
		return sha256.New224(), nil
	case SHA384:
		return sha512.New384(), nil
	case SHA512:
		return sha512.New(), nil
	case SHA512_224:
		return sha512.New512_224(), nil
	case SHA512_256:
		return sha512.New512_256(), nil
	case SHA3_224:
		return sha3.New224(), nil
	case SHA3_256:
		return sha3.New256(), nil
	case SHA3_384:
		return sha3.New384(), nil
	case SHA3_512:
		return sha3.New512(), nil
	case BLAKE2s256:
		return blake2s.New256(nil)
	case BLAKE2b512:
		return blake2b.New512(nil)
	default:
		return nil, fmt.Errorf("digest: unknown kind %d", int(k))
	}
}

// Size returns the digest's output length in bytes (H_LEN).
func (k Kind) Size() int {
	h, err := k.New()
	if err != nil {
		return 0
	}
	return h.Size()
}

// Block is the fixed-length output of a digest invocation.
type Block []byte

// H concatenates args in order and digests the result with kind. Each
// argument must be a []byte, uint64, uint32 or int; any other type is
// rejected with an error. Integers are encoded 8-byte little-endian per
// the Balloon construction's counter/index encoding, byte strings are
// used verbatim. There is no
// separator or length prefix between arguments: reproducing the exact
// concatenation order is required for digest compatibility.
func H(kind Kind, args ...any) (Block, error) {
	h, err := kind.New()
	if err != nil {
		return nil, err
	}
	for _, arg := range args {
		switch v := arg.(type) {
		case []byte:
			h.Write(v)
		case uint64:
			h.Write(LE8(v))
		case uint32:
			h.Write(LE8(uint64(v)))
		case int:
			h.Write(LE8(uint64(v)))
		default:
			return nil, fmt.Errorf("digest: unsupported argument type %T", arg)
		}
	}
	return h.Sum(nil), nil
}

// LE8 encodes v as 8 bytes little-endian, the canonical integer encoding
// for counters, indices, and lane numbers throughout the construction.
func LE8(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}
