// SPDX-License-Identifier: MIT

package builder

import (
	crand "crypto/rand"
	"encoding/binary"
)

// cryptoSource draws from the operating system CSPRNG (crypto/rand).
// It is the default edge source, so unseeded topologies are not predictable.
type cryptoSource struct{}

// uint64 reads 8 bytes from crypto/rand. crypto/rand.Read does not fail on
// supported platforms (Go ≥ 1.24 aborts the process instead of erroring).
func (cryptoSource) uint64() uint64 {
	var buf [8]byte
	_, _ = crand.Read(buf[:])

	return binary.LittleEndian.Uint64(buf[:])
}

// Float64 returns a uniform value in [0, 1) built from 53 random bits.
func (s cryptoSource) Float64() float64 {
	return float64(s.uint64()>>11) / (1 << 53)
}

// Int63 returns a non-negative random int64, used to seed math/rand.
func (s cryptoSource) Int63() int64 {
	return int64(s.uint64() >> 1)
}
