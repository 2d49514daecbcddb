package main

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/segmentio/cityhash"
)

type seeds struct {
	seed0, seed1 uint64
	set0, set1   bool
}

func (s seeds) any() bool { return s.set0 || s.set1 }

func (s seeds) uint128() cityhash.Uint128 {
	return cityhash.Uint128{s.seed0, s.seed1}
}

// fingerprint is a hash value rendered as a big-endian byte sequence, so its
// hexadecimal form reads like the number it represents.
type fingerprint []byte

func (f fingerprint) String() string { return hex.EncodeToString(f) }

func (f fingerprint) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func fingerprint32(h uint32) fingerprint {
	return binary.BigEndian.AppendUint32(make(fingerprint, 0, 4), h)
}

func fingerprint64(h uint64) fingerprint {
	return binary.BigEndian.AppendUint64(make(fingerprint, 0, 8), h)
}

func fingerprint128(h cityhash.Uint128) fingerprint {
	f := make(fingerprint, 0, 16)
	f = binary.BigEndian.AppendUint64(f, h.High())
	f = binary.BigEndian.AppendUint64(f, h.Low())
	return f
}

func fingerprint256(h cityhash.Uint256) fingerprint {
	f := make(fingerprint, 0, 32)
	for _, w := range h {
		f = binary.BigEndian.AppendUint64(f, w)
	}
	return f
}

type algorithm struct {
	name string
	bits int
	crc  bool
	// maxSeeds is the number of seeds the algorithm accepts.
	maxSeeds int
	sum      func([]byte, seeds) fingerprint
}

func (a *algorithm) checkSeeds(s seeds) error {
	switch {
	case a.maxSeeds == 0 && s.any():
		return fmt.Errorf("algorithm %q does not accept seeds", a.name)
	case a.maxSeeds < 2 && s.set1:
		return fmt.Errorf("algorithm %q accepts a single seed", a.name)
	}
	return nil
}

var algorithms = map[string]*algorithm{
	"32": {
		name: "32",
		bits: 32,
		sum: func(b []byte, _ seeds) fingerprint {
			return fingerprint32(cityhash.Hash32(b))
		},
	},

	"64": {
		name:     "64",
		bits:     64,
		maxSeeds: 2,
		sum: func(b []byte, s seeds) fingerprint {
			switch {
			case s.set1:
				return fingerprint64(cityhash.Hash64WithSeeds(b, s.seed0, s.seed1))
			case s.set0:
				return fingerprint64(cityhash.Hash64WithSeed(b, s.seed0))
			default:
				return fingerprint64(cityhash.Hash64(b))
			}
		},
	},

	"128": {
		name:     "128",
		bits:     128,
		maxSeeds: 2,
		sum: func(b []byte, s seeds) fingerprint {
			if s.any() {
				return fingerprint128(cityhash.Hash128WithSeed(b, s.uint128()))
			}
			return fingerprint128(cityhash.Hash128(b))
		},
	},

	"crc128": {
		name:     "crc128",
		bits:     128,
		crc:      true,
		maxSeeds: 2,
		sum: func(b []byte, s seeds) fingerprint {
			if s.any() {
				return fingerprint128(cityhash.HashCRC128WithSeed(b, s.uint128()))
			}
			return fingerprint128(cityhash.HashCRC128(b))
		},
	},

	"crc256": {
		name: "crc256",
		bits: 256,
		crc:  true,
		sum: func(b []byte, _ seeds) fingerprint {
			return fingerprint256(cityhash.HashCRC256(b))
		},
	},
}

func lookupAlgorithm(name string) (*algorithm, error) {
	if a, ok := algorithms[strings.ToLower(name)]; ok {
		return a, nil
	}
	return nil, fmt.Errorf("unknown algorithm %q (expected one of %s)", name, strings.Join(algorithmNames(), ", "))
}

func algorithmNames() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
