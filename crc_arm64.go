//go:build !purego

package cityhash

import "golang.org/x/sys/cpu"

var hasCRC32 = cpu.ARM64.HasCRC32

// crc32u64 is implemented in crc_arm64.s with the CRC32CX instruction, it must
// only be called when hasCRC32 is true.
func crc32u64(crc, v uint64) uint64
