package balloon

import (
	"encoding/hex"
	"testing"
)

func TestVerifyCorrectness(t *testing.T) {
	password, salt := []byte("password"), []byte("salt")
	cfg := Config{SpaceCost: 8, TimeCost: 2, Delta: 3}

	digestBytes, err := Hash(password, salt, cfg)
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	expected := hex.EncodeToString(digestBytes)

	ok, err := Verify(expected, password, salt, cfg)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Error("Verify should succeed against the digest's own hex encoding")
	}

	wrong := make([]byte, len(digestBytes))
	copy(wrong, digestBytes)
	wrong[0] ^= 0xff
	ok, err = Verify(hex.EncodeToString(wrong), password, salt, cfg)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Error("Verify should fail against a mismatched digest")
	}
}

func TestVerifyWrongLength(t *testing.T) {
	ok, err := Verify("deadbeef", []byte("p"), []byte("s"), Config{SpaceCost: 4, TimeCost: 1, Delta: 1})
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Error("Verify should return false for a hex string of the wrong length")
	}
}

func TestVerifyCaseSensitive(t *testing.T) {
	password, salt := []byte("password"), []byte("salt")
	cfg := Config{SpaceCost: 4, TimeCost: 1, Delta: 2}

	digestBytes, err := Hash(password, salt, cfg)
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	uppercase := toUpperHex(hex.EncodeToString(digestBytes))

	ok, err := Verify(uppercase, password, salt, cfg)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Error("Verify must require exact byte equality; uppercase hex must not match")
	}
}

func TestVerifyRejectsInvalidParameters(t *testing.T) {
	_, err := Verify("deadbeef", []byte("p"), []byte("s"), Config{SpaceCost: 0, TimeCost: 1, Delta: 1})
	if err == nil {
		t.Fatal("expected error for SpaceCost=0")
	}
}

func TestVerifyMCorrectness(t *testing.T) {
	password, salt := []byte("password"), []byte("salt")
	cfg := Config{SpaceCost: 4, TimeCost: 1, Delta: 2, ParallelCost: 2}

	digestBytes, err := HashM(password, salt, cfg)
	if err != nil {
		t.Fatalf("HashM: %v", err)
	}
	expected := hex.EncodeToString(digestBytes)

	ok, err := VerifyM(expected, password, salt, cfg)
	if err != nil {
		t.Fatalf("VerifyM: %v", err)
	}
	if !ok {
		t.Error("VerifyM should succeed against the digest's own hex encoding")
	}

	ok, err = VerifyM(expected, password, []byte("different-salt"), cfg)
	if err != nil {
		t.Fatalf("VerifyM: %v", err)
	}
	if ok {
		t.Error("VerifyM should fail when salt differs")
	}
}

func toUpperHex(s string) string {
	out := []byte(s)
	for i, c := range out {
		if c >= 'a' && c <= 'f' {
			out[i] = c - 'a' + 'A'
		}
	}
	return string(out)
}
