package heart

import (
	"testing"
	"time"
)

func TestContactWatchNotExpiredBeforeFirstTouch(t *testing.T) {
	c := NewContactWatch(time.Second)
	if c.Expired(time.Now()) {
		t.Fatalf("Expired() before any Touch reported true")
	}
}

func TestContactWatchExpiresAfterTimeout(t *testing.T) {
	c := NewContactWatch(100 * time.Millisecond)
	start := time.Now()
	c.Touch(start)

	if c.Expired(start.Add(50 * time.Millisecond)) {
		t.Fatalf("Expired() before the timeout elapsed reported true")
	}
	if !c.Expired(start.Add(200 * time.Millisecond)) {
		t.Fatalf("Expired() after the timeout elapsed reported false")
	}
}

func TestContactWatchTouchResetsTheClock(t *testing.T) {
	c := NewContactWatch(100 * time.Millisecond)
	start := time.Now()
	c.Touch(start)
	c.Touch(start.Add(90 * time.Millisecond))

	if c.Expired(start.Add(150 * time.Millisecond)) {
		t.Fatalf("Expired() reported true even though Touch moved the clock forward")
	}
}

func TestContactWatchLastContact(t *testing.T) {
	c := NewContactWatch(time.Second)
	now := time.Now()
	c.Touch(now)

	if got := c.LastContact(); !got.Equal(now) {
		t.Fatalf("LastContact() = %v, want %v", got, now)
	}
}

func TestAtomicTimeRoundTrip(t *testing.T) {
	var at AtomicTime
	now := time.Now()
	at.Set(now)

	if got := at.Get(); got != now.UnixNano() {
		t.Fatalf("Get() = %d, want %d", got, now.UnixNano())
	}
	if got := at.Time(); !got.Equal(now) {
		t.Fatalf("Time() = %v, want %v", got, now)
	}
}
