package moreatomic

import (
	"context"
	"testing"
	"time"
)

func TestMissedBitmapStartsAllMissing(t *testing.T) {
	m := NewMissedBitmap(5)
	for id := 1; id <= 5; id++ {
		if !m.Missing(id) {
			t.Fatalf("id %d not marked missing on a fresh bitmap", id)
		}
	}
	if missing, ok := m.FirstMissing(5); !ok || missing != 1 {
		t.Fatalf("FirstMissing = (%d, %v), want (1, true)", missing, ok)
	}
}

func TestMissedBitmapClearAndFirstMissing(t *testing.T) {
	m := NewMissedBitmap(5)
	m.Clear(1)
	m.Clear(2)

	if m.Missing(1) || m.Missing(2) {
		t.Fatalf("ids 1 and 2 still marked missing after Clear")
	}
	if missing, ok := m.FirstMissing(5); !ok || missing != 3 {
		t.Fatalf("FirstMissing = (%d, %v), want (3, true)", missing, ok)
	}

	for id := 3; id <= 5; id++ {
		m.Clear(id)
	}
	if _, ok := m.FirstMissing(5); ok {
		t.Fatalf("FirstMissing reported a gap after every id was cleared")
	}
}

func TestMissedBitmapResetReMarksEverything(t *testing.T) {
	m := NewMissedBitmap(3)
	m.Clear(1)
	m.Clear(2)
	m.Clear(3)
	m.Reset()

	for id := 1; id <= 3; id++ {
		if !m.Missing(id) {
			t.Fatalf("id %d not missing after Reset", id)
		}
	}
}

func TestMissedBitmapOutOfWindowIsIgnored(t *testing.T) {
	m := NewMissedBitmap(3)
	if m.Missing(100) {
		t.Fatalf("Missing(100) on a size-3 bitmap reported true, want false")
	}
	m.Clear(100) // must not panic
	if _, ok := m.FirstMissing(100); !ok {
		t.Fatalf("FirstMissing(100) found nothing missing within the tracked window")
	}
}

func TestPacketIDCounterIncrementsAndWraps(t *testing.T) {
	var c PacketIDCounter
	if got := c.Next(); got != 1 {
		t.Fatalf("first Next() = %d, want 1", got)
	}
	if got := c.Next(); got != 2 {
		t.Fatalf("second Next() = %d, want 2", got)
	}

	c.Reset()
	if got := c.Get(); got != 0 {
		t.Fatalf("Get() after Reset = %d, want 0", got)
	}
}

func TestPacketIDCounterWrapsAtMax(t *testing.T) {
	var c PacketIDCounter
	c.val = 0xFFFF
	if got := c.Next(); got != 1 {
		t.Fatalf("Next() after 0xFFFF = %d, want wrap to 1", got)
	}
}

func TestCtxMutexLockBlocksUntilUnlocked(t *testing.T) {
	m := NewCtxMutex()
	if err := m.Lock(context.Background()); err != nil {
		t.Fatalf("first Lock: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := m.Lock(ctx); err == nil {
		t.Fatalf("second Lock on an already-held mutex succeeded, want a timeout error")
	}

	m.Unlock()
	if err := m.Lock(context.Background()); err != nil {
		t.Fatalf("Lock after Unlock: %v", err)
	}
}

func TestCtxMutexUnlockOfUnlockedPanics(t *testing.T) {
	m := NewCtxMutex()
	defer func() {
		if recover() == nil {
			t.Fatalf("Unlock of an unlocked CtxMutex did not panic")
		}
	}()
	m.Unlock()
}

func TestCtxMutexTryUnlock(t *testing.T) {
	m := NewCtxMutex()
	if m.TryUnlock() {
		t.Fatalf("TryUnlock on an unlocked mutex reported success")
	}

	if err := m.Lock(context.Background()); err != nil {
		t.Fatalf("Lock: %v", err)
	}
	if !m.TryUnlock() {
		t.Fatalf("TryUnlock on a locked mutex reported failure")
	}
}
