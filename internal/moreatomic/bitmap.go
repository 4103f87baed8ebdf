// Package moreatomic holds small concurrency-safe primitives that don't
// fit go.uber.org/atomic's generic Bool/Uint32/Uint64 wrappers: a bitset
// sized to the protocol's initial-payload window, and a context-aware
// mutex used to guard the command bundling cursor.
package moreatomic

import "sync"

// MissedBitmap tracks which packet ids in [1, N] have not yet been
// received during the initial-payload phase. It starts with every bit
// set ("missing") and bits are cleared as packets arrive.
type MissedBitmap struct {
	mu   sync.Mutex
	bits []bool
}

// NewMissedBitmap returns a bitmap covering ids [1, size], all initially
// marked missing.
func NewMissedBitmap(size int) *MissedBitmap {
	m := &MissedBitmap{bits: make([]bool, size+1)}
	m.Reset()
	return m
}

// Reset marks every id as missing again.
func (m *MissedBitmap) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.bits {
		m.bits[i] = true
	}
	m.bits[0] = false // id 0 is never a real packet id
}

// Clear marks id as received. Ids outside the tracked window are ignored.
func (m *MissedBitmap) Clear(id int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id >= 0 && id < len(m.bits) {
		m.bits[id] = false
	}
}

// Missing reports whether id is still marked missing. Ids outside the
// tracked window report false (nothing to wait for).
func (m *MissedBitmap) Missing(id int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id < 0 || id >= len(m.bits) {
		return false
	}
	return m.bits[id]
}

// FirstMissing scans [1, upTo] and returns the lowest id still marked
// missing, or 0 with ok=false if none remain.
func (m *MissedBitmap) FirstMissing(upTo int) (id int, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if upTo >= len(m.bits) {
		upTo = len(m.bits) - 1
	}
	for i := 1; i <= upTo; i++ {
		if m.bits[i] {
			return i, true
		}
	}
	return 0, false
}
