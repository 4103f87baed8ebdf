package transport

import (
	"net"
	"testing"
	"time"
)

func TestEndpointSendAndPollRoundTrip(t *testing.T) {
	peer, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.ParseIP("127.0.0.1")})
	if err != nil {
		t.Fatalf("listen udp: %v", err)
	}
	defer peer.Close()

	e, err := Dial(peer.LocalAddr().String())
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer e.Close()

	if err := e.Send([]byte("hello")); err != nil {
		t.Fatalf("Send: %v", err)
	}

	buf := make([]byte, 64)
	peer.SetReadDeadline(time.Now().Add(time.Second))
	n, raddr, err := peer.ReadFromUDP(buf)
	if err != nil {
		t.Fatalf("peer read: %v", err)
	}
	if string(buf[:n]) != "hello" {
		t.Fatalf("peer received %q, want %q", buf[:n], "hello")
	}

	if _, err := peer.WriteToUDP([]byte("world"), raddr); err != nil {
		t.Fatalf("peer write: %v", err)
	}

	deadline := time.Now().Add(time.Second)
	for {
		dg, ok := e.Poll()
		if ok {
			if string(dg.Data) != "world" {
				t.Fatalf("Poll() data = %q, want %q", dg.Data, "world")
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("Poll() never returned the peer's datagram")
		}
		time.Sleep(time.Millisecond)
	}

	sent, recv := e.Stats()
	if sent != 1 {
		t.Fatalf("Stats() sent = %d, want 1", sent)
	}
	if recv != 1 {
		t.Fatalf("Stats() recv = %d, want 1", recv)
	}
}

func TestEndpointPollEmptyReturnsFalse(t *testing.T) {
	peer, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.ParseIP("127.0.0.1")})
	if err != nil {
		t.Fatalf("listen udp: %v", err)
	}
	defer peer.Close()

	e, err := Dial(peer.LocalAddr().String())
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer e.Close()

	if _, ok := e.Poll(); ok {
		t.Fatalf("Poll() on an idle endpoint reported a datagram")
	}
}

func TestEndpointCloseIsIdempotentAndRejectsSend(t *testing.T) {
	peer, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.ParseIP("127.0.0.1")})
	if err != nil {
		t.Fatalf("listen udp: %v", err)
	}
	defer peer.Close()

	e, err := Dial(peer.LocalAddr().String())
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}

	if err := e.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := e.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if err := e.Send([]byte("x")); err == nil {
		t.Fatalf("Send after Close succeeded, want an error")
	}
}

func TestEndpointFlushDiscardsQueuedDatagrams(t *testing.T) {
	peer, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.ParseIP("127.0.0.1")})
	if err != nil {
		t.Fatalf("listen udp: %v", err)
	}
	defer peer.Close()

	e, err := Dial(peer.LocalAddr().String())
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer e.Close()

	if err := e.Send([]byte("ping")); err != nil {
		t.Fatalf("Send: %v", err)
	}
	buf := make([]byte, 64)
	peer.SetReadDeadline(time.Now().Add(time.Second))
	_, raddr, err := peer.ReadFromUDP(buf)
	if err != nil {
		t.Fatalf("peer read: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := peer.WriteToUDP([]byte("pong"), raddr); err != nil {
			t.Fatalf("peer write: %v", err)
		}
	}

	deadline := time.Now().Add(time.Second)
	for {
		if _, recv := e.Stats(); recv >= 3 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("endpoint never observed the 3 replies")
		}
		time.Sleep(time.Millisecond)
	}

	e.Flush()
	if _, ok := e.Poll(); ok {
		t.Fatalf("Poll() returned a datagram after Flush")
	}
}
