package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		key  string
		id   uint64
	}{
		{"empty key", "", 0xef46db3751d8e999},
		{"short key", "test", 0x4fdcca5ddb678139},
		{"long key", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.id, ID(tt.key))
		})
	}
}

func TestChecksumMatchesID(t *testing.T) {
	require.Equal(t, ID("another test string"), Checksum([]byte("another test string")))
}

func TestDigest_Incremental(t *testing.T) {
	d := NewDigest()
	d.Write([]byte("this is a longer "))
	d.Write([]byte("test string to hash"))

	require.Equal(t, Checksum([]byte("this is a longer test string to hash")), d.Sum64())
}

func BenchmarkID(b *testing.B) {
	key := "site/building-07/floor-2/slab"
	for b.Loop() {
		ID(key)
	}
}
