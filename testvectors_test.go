package balloon

import (
	"bytes"
	"testing"
)

func TestVectorSuite(t *testing.T) {
	suite, err := LoadVectors("testdata/vectors.json")
	if err != nil {
		t.Fatalf("LoadVectors: %v", err)
	}

	for _, v := range suite.Vectors {
		v := v
		t.Run(v.Name, func(t *testing.T) {
			want, err := v.ExpectedBytes()
			if err != nil {
				t.Fatalf("ExpectedBytes: %v", err)
			}

			var got Block
			if v.Parallel > 0 {
				got, err = HashM([]byte(v.Password), []byte(v.Salt), v.Config())
			} else {
				got, err = Hash([]byte(v.Password), []byte(v.Salt), v.Config())
			}
			if err != nil {
				t.Fatalf("hash: %v", err)
			}

			if !bytes.Equal(got, want) {
				t.Errorf("digest mismatch:\n got  %x\n want %x", got, want)
			}
		})
	}
}
