//go:build !purego

package cityhash

import "golang.org/x/sys/cpu"

// The crc32 instruction is part of SSE4.2.
var hasCRC32 = cpu.X86.HasSSE42

// crc32u64 is implemented in crc_amd64.s with the CRC32Q instruction, it must
// only be called when hasCRC32 is true.
func crc32u64(crc, v uint64) uint64
