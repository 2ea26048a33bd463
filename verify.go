package balloon

import (
	"crypto/subtle"
	"encoding/hex"
)

// Verify recomputes the Balloon digest of password under salt per cfg and
// compares it against expectedHex (lowercase hex) in constant time. It
// returns true iff the digests are byte-equal. A length-mismatched
// expectedHex is not an error: it returns false without ever comparing
// digest bytes, since the comparison cannot proceed. cfg parameter
// validation failures are returned as errors.
func Verify(expectedHex string, password, salt []byte, cfg Config) (bool, error) {
	got, err := Hash(password, salt, cfg)
	if err != nil {
		return false, err
	}
	return constantTimeHexEqual(expectedHex, got)
}

// VerifyM is the M-core analogue of Verify, recomputing via HashM.
func VerifyM(expectedHex string, password, salt []byte, cfg Config) (bool, error) {
	got, err := HashM(password, salt, cfg)
	if err != nil {
		return false, err
	}
	return constantTimeHexEqual(expectedHex, got)
}

func constantTimeHexEqual(expectedHex string, got Block) (bool, error) {
	want := make([]byte, hex.EncodedLen(len(got)))
	hex.Encode(want, got)

	if len(expectedHex) != len(want) {
		return false, nil
	}
	return subtle.ConstantTimeCompare([]byte(expectedHex), want) == 1, nil
}
