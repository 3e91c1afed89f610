package rng

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"
	"sync"
)

// Source supplies raw uniform 32-bit values.
type Source interface {
	Uint32() (uint32, error)
}

// CryptoSource draws from the operating system's entropy pool.
type CryptoSource struct{}

// Uint32 returns four bytes from crypto/rand.
func (CryptoSource) Uint32() (uint32, error) {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// SeededSource is a deterministic PCG source. Two sources built from the
// same seed produce the same sequence.
type SeededSource struct {
	mu  sync.Mutex
	pcg *mrand.PCG
}

// NewSeededSource creates a SeededSource for the given seed.
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{pcg: mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15)}
}

// Uint32 returns the high bits of the next PCG output. It never fails.
func (s *SeededSource) Uint32() (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return uint32(s.pcg.Uint64() >> 32), nil
}
