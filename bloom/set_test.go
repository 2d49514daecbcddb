package bloom_test

import (
	"fmt"
	"testing"

	"github.com/segmentio/cityhash"
	"github.com/segmentio/cityhash/bloom"
)

func makeKeys(prefix string, n int) [][]byte {
	keys := make([][]byte, n)
	for i := range keys {
		keys[i] = []byte(fmt.Sprintf("%s-%08d", prefix, i))
	}
	return keys
}

func TestSet(t *testing.T) {
	for _, test := range []struct {
		scenario string
		hash     bloom.Hash
	}{
		{scenario: "default", hash: nil},
		{scenario: "cityhash64", hash: bloom.CityHash64{}},
		{scenario: "seeded", hash: bloom.SeededCityHash64{Seed: 42}},
	} {
		t.Run(test.scenario, func(t *testing.T) {
			const N = 2000
			set := bloom.NewSet(N, 0, test.hash)
			keys := makeKeys("key", N)

			duplicates := 0
			for _, k := range keys {
				if set.Add(k) {
					duplicates++
				}
			}
			if r := float64(duplicates) / N; r > 0.02 {
				t.Errorf("too many keys reported as duplicates on first insert: %g%%", r*100)
			}

			for _, k := range keys {
				if !set.Add(k) {
					t.Fatalf("key %q not reported as a duplicate", k)
				}
				if !set.Contains(k) {
					t.Fatalf("key %q not found in the set", k)
				}
			}

			falsePositives := 0
			for _, k := range makeKeys("missing", N) {
				if set.Contains(k) {
					falsePositives++
				}
			}
			if r := float64(falsePositives) / N; r > 0.02 {
				t.Errorf("set triggered too many false positives: %g%%", r*100)
			}

			set.Reset()
			if set.Contains(keys[0]) {
				t.Error("set not cleared after reset")
			}
		})
	}
}

func TestSetAddBatch(t *testing.T) {
	keys := makeKeys("batch", 300)
	set := bloom.NewSet(int64(len(keys)), 12, nil)
	set.AddBatch(keys)

	for _, k := range keys {
		if !set.Contains(k) {
			t.Fatalf("key %q not found after batch insert", k)
		}
		if !set.Filter().Check(cityhash.Hash64(k)) {
			t.Fatalf("filter does not contain the fingerprint of %q", k)
		}
	}
}

func TestSeededHash(t *testing.T) {
	keys := makeKeys("seed", 10)
	hashes := make([]uint64, len(keys))
	h := bloom.SeededCityHash64{Seed: 1}

	if n := h.MultiSum64(hashes, keys); n != len(keys) {
		t.Fatalf("return value mismatch: want=%d got=%d", len(keys), n)
	}
	for i, k := range keys {
		if hashes[i] != h.Sum64(k) {
			t.Errorf("hash at index %d mismatch", i)
		}
		if hashes[i] == (bloom.CityHash64{}).Sum64(k) {
			t.Errorf("seed not mixed in the hash of %q", k)
		}
	}
}
