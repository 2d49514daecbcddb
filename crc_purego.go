//go:build purego || !(amd64 || arm64)

package cityhash

// Without assembly support the CRC engine is disabled, the functions exposed
// by crc.go panic when called.
const hasCRC32 = false

func crc32u64(crc, v uint64) uint64 {
	return crc32u64Generic(crc, v)
}
