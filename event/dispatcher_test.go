package event

import (
	"sync"
	"testing"
	"time"

	"github.com/go-atem/atemkit/protocol"
)

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		ConnectAttempt: "connectAttempt",
		Connect:        "connect",
		Disconnect:     "disconnect",
		Receive:        "receive",
		Warning:        "warning",
		Kind(99):       "unknown",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Fatalf("Kind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}

func waitFor(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for an event")
		return Event{}
	}
}

func TestDispatcherDeliversToSubscriber(t *testing.T) {
	d := NewDispatcher()
	defer d.Close()

	received := make(chan Event, 1)
	d.On(func(ev Event) { received <- ev })

	d.Post(Event{Kind: Receive, Tag: protocol.OutCut, Name: "cut"})

	ev := waitFor(t, received)
	if ev.Kind != Receive || ev.Tag != protocol.OutCut || ev.Name != "cut" {
		t.Fatalf("delivered event = %+v, want Kind=Receive Tag=OutCut Name=cut", ev)
	}
}

func TestDispatcherDeliversInRegistrationOrder(t *testing.T) {
	d := NewDispatcher()
	defer d.Close()

	var mu sync.Mutex
	var order []int

	for i := 0; i < 3; i++ {
		i := i
		d.On(func(Event) {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		})
	}

	done := make(chan struct{})
	d.On(func(Event) { close(done) })

	d.Post(Event{Kind: ConnectAttempt})
	<-done

	mu.Lock()
	defer mu.Unlock()
	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Fatalf("handlers fired in order %v, want [0 1 2]", order)
	}
}

func TestDispatcherUnsubscribeStopsDelivery(t *testing.T) {
	d := NewDispatcher()
	defer d.Close()

	received := make(chan Event, 2)
	unsubscribe := d.On(func(ev Event) { received <- ev })

	d.Post(Event{Kind: ConnectAttempt})
	waitFor(t, received)

	unsubscribe()

	confirm := make(chan struct{})
	d.On(func(Event) { close(confirm) })
	d.Post(Event{Kind: Connect})
	<-confirm

	select {
	case ev := <-received:
		t.Fatalf("unsubscribed handler still received an event: %+v", ev)
	default:
	}
}

func TestDispatcherCloseIsIdempotentAndDrains(t *testing.T) {
	d := NewDispatcher()

	received := make(chan Event, 1)
	d.On(func(ev Event) { received <- ev })

	d.Post(Event{Kind: Disconnect})
	d.Close()
	d.Close() // must not panic or block

	ev := waitFor(t, received)
	if ev.Kind != Disconnect {
		t.Fatalf("event queued before Close was not delivered: %+v", ev)
	}
}
