package session

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/go-atem/atemkit/event"
	"github.com/go-atem/atemkit/protocol"
	"github.com/go-atem/atemkit/wire"
)

// fakeSwitcher is a minimal UDP peer standing in for a real switcher: it
// only understands enough of the handshake to drive a Session through
// HelloSent -> HelloAcked -> Syncing -> Connected.
type fakeSwitcher struct {
	t    *testing.T
	conn *net.UDPConn
}

func newFakeSwitcher(t *testing.T) *fakeSwitcher {
	t.Helper()
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.ParseIP("127.0.0.1")})
	if err != nil {
		t.Fatalf("listen udp: %v", err)
	}
	return &fakeSwitcher{t: t, conn: conn}
}

func (f *fakeSwitcher) addr() string { return f.conn.LocalAddr().String() }

func (f *fakeSwitcher) close() { f.conn.Close() }

// recv reads the next datagram and the address it came from, failing the
// test if none arrives within the deadline.
func (f *fakeSwitcher) recv(within time.Duration) ([]byte, *net.UDPAddr) {
	f.t.Helper()
	f.conn.SetReadDeadline(time.Now().Add(within))
	buf := make([]byte, 2048)
	n, raddr, err := f.conn.ReadFromUDP(buf)
	if err != nil {
		f.t.Fatalf("fake switcher recv: %v", err)
	}
	return buf[:n], raddr
}

func (f *fakeSwitcher) send(raddr *net.UDPAddr, data []byte) {
	f.t.Helper()
	if _, err := f.conn.WriteToUDP(data, raddr); err != nil {
		f.t.Fatalf("fake switcher send: %v", err)
	}
}

func headerOnlyPacket(h wire.Header) []byte {
	buf := wire.NewBuffer(protocol.HeaderLen)
	h.Length = uint16(protocol.HeaderLen)
	h.Encode(buf)
	return buf.Bytes()
}

func TestSessionHandshakeReachesConnected(t *testing.T) {
	fake := newFakeSwitcher(t)
	defer fake.close()

	s := New()
	defer s.Close()

	if err := s.Connect(fake.addr(), 2*time.Second, false); err != nil {
		t.Fatalf("Connect: %v", err)
	}

	// The hello packet: 20 bytes, hello flag set, session id 0.
	hello, raddr := fake.recv(time.Second)
	if len(hello) != protocol.HeaderLen+protocol.CmdHeaderLen {
		t.Fatalf("hello packet length = %d, want %d", len(hello), protocol.HeaderLen+protocol.CmdHeaderLen)
	}
	helloHeader := wire.DecodeHeader(wire.WrapBuffer(hello))
	if !helloHeader.Flags.Has(protocol.FlagHello) {
		t.Fatalf("hello packet missing hello flag: %s", helloHeader.Flags)
	}

	const sessionID = 0xBEEF

	// Hello reply: not fully booked (byte 0 of the payload != 3).
	replyBuf := wire.NewBuffer(protocol.HeaderLen + protocol.CmdHeaderLen)
	replyHeader := wire.Header{SessionID: sessionID, Length: uint16(replyBuf.Len())}
	replyHeader.Encode(replyBuf)
	replyBuf.SetU8(protocol.HeaderLen, 0) // book status byte, not booked
	fake.send(raddr, replyBuf.Bytes())

	// Session should ack the hello.
	ack, _ := fake.recv(time.Second)
	ackHeader := wire.DecodeHeader(wire.WrapBuffer(ack))
	if !ackHeader.Flags.Has(protocol.FlagAck) {
		t.Fatalf("expected ack after hello reply, got flags %s", ackHeader.Flags)
	}

	if !s.WaitForConnection(false, time.Second, false) {
		t.Fatalf("handshake never started")
	}

	// Deliver the initial-payload-complete marker: a 12-byte packet whose
	// remote packet id is > 1, with no ackRequest so nothing more is owed.
	fake.send(raddr, headerOnlyPacket(wire.Header{SessionID: sessionID, PacketID: 2}))

	if !s.WaitForConnection(false, 2*time.Second, true) {
		t.Fatalf("session never reached Connected, phase=%s", s.Phase())
	}
	if !s.IsConnected() {
		t.Fatalf("IsConnected() = false after WaitForConnection succeeded")
	}
	if !s.IsAlive() {
		t.Fatalf("IsAlive() = false once connected")
	}
}

func TestWaitForConnectionTimesOutWithNoReply(t *testing.T) {
	fake := newFakeSwitcher(t)
	defer fake.close()

	s := New()
	defer s.Close()

	if err := s.Connect(fake.addr(), time.Second, false); err != nil {
		t.Fatalf("Connect: %v", err)
	}

	// Drain (and ignore) the hello packet so the fake switcher's receive
	// buffer doesn't matter; reply with nothing.
	fake.recv(time.Second)

	if s.WaitForConnection(false, 100*time.Millisecond, false) {
		t.Fatalf("WaitForConnection reported success with no reply sent")
	}
	if s.IsConnected() {
		t.Fatalf("IsConnected() = true with no reply sent")
	}
}

func TestConnectRejectsSecondCallWhileConnecting(t *testing.T) {
	fake := newFakeSwitcher(t)
	defer fake.close()

	s := New()
	defer s.Close()

	if err := s.Connect(fake.addr(), time.Second, false); err != nil {
		t.Fatalf("Connect: %v", err)
	}

	if err := s.Connect(fake.addr(), time.Second, false); err != ErrAlreadyConnecting {
		t.Fatalf("second Connect error = %v, want ErrAlreadyConnecting", err)
	}
}

// subPacket builds one command sub-packet (length/reserved/tag header
// plus payload, padded to a multiple of 4 bytes) the way the bundler
// itself frames setters.
func subPacket(tag protocol.Tag, payload []byte) []byte {
	padded := len(payload)
	if rem := padded % 4; rem != 0 {
		padded += 4 - rem
	}
	total := protocol.CmdHeaderLen + padded
	buf := wire.NewBuffer(total)
	buf.SetU16(0, uint16(total))
	buf.SetString(protocol.CmdTagOffset, protocol.CmdTagLen, string(tag))
	for i, b := range payload {
		buf.SetU8(protocol.CmdHeaderLen+i, b)
	}
	return buf.Bytes()
}

// datagramWithSubPackets stitches a header onto one or more already-framed
// sub-packets, the way a real inbound datagram carries several commands.
func datagramWithSubPackets(h wire.Header, subs ...[]byte) []byte {
	total := protocol.HeaderLen
	for _, s := range subs {
		total += len(s)
	}
	buf := wire.NewBuffer(total)
	h.Length = uint16(total)
	h.Encode(buf)
	offset := protocol.HeaderLen
	for _, s := range subs {
		for i, b := range s {
			buf.SetU8(offset+i, b)
		}
		offset += len(s)
	}
	return buf.Bytes()
}

// connectToConnected drives a fresh Session through the full handshake
// against fake, returning the switcher's address for it to keep sending
// sub-packets to.
func connectToConnected(t *testing.T, s *Session, fake *fakeSwitcher, sessionID uint16) *net.UDPAddr {
	t.Helper()

	if err := s.Connect(fake.addr(), 2*time.Second, false); err != nil {
		t.Fatalf("Connect: %v", err)
	}

	_, raddr := fake.recv(time.Second)

	replyBuf := wire.NewBuffer(protocol.HeaderLen + protocol.CmdHeaderLen)
	replyHeader := wire.Header{SessionID: sessionID, Length: uint16(replyBuf.Len())}
	replyHeader.Encode(replyBuf)
	replyBuf.SetU8(protocol.HeaderLen, 0)
	fake.send(raddr, replyBuf.Bytes())

	fake.recv(time.Second) // the ack

	if !s.WaitForConnection(false, time.Second, false) {
		t.Fatalf("handshake never started")
	}

	fake.send(raddr, headerOnlyPacket(wire.Header{SessionID: sessionID, PacketID: 2}))

	if !s.WaitForConnection(false, 2*time.Second, true) {
		t.Fatalf("session never reached Connected, phase=%s", s.Phase())
	}
	return raddr
}

// TestWarnSubPacketPromotesDedicatedWarningEvent mirrors ATEMMax.py's
// _onReceive special case for "Warn": a non-empty decoded warning message
// must surface as its own event.Warning, not just a generic event.Receive.
func TestWarnSubPacketPromotesDedicatedWarningEvent(t *testing.T) {
	fake := newFakeSwitcher(t)
	defer fake.close()

	s := New()
	defer s.Close()

	const sessionID = 0xCAFE
	raddr := connectToConnected(t, s, fake, sessionID)

	warnings := make(chan string, 4)
	unsubscribe := s.Events.On(func(ev event.Event) {
		if ev.Kind == event.Warning && ev.Tag == protocol.TagWarning {
			warnings <- ev.Text
		}
	})
	defer unsubscribe()

	text := "lens not connected"
	payload := make([]byte, 44)
	copy(payload, text)
	warn := subPacket(protocol.TagWarning, payload)

	fake.send(raddr, datagramWithSubPackets(wire.Header{SessionID: sessionID, PacketID: 3, Flags: protocol.FlagAckRequest}, warn))

	select {
	case got := <-warnings:
		if got != text {
			t.Fatalf("warning event text = %q, want %q", got, text)
		}
	case <-time.After(time.Second):
		t.Fatalf("no dedicated warning event posted for a Warn sub-packet")
	}

	if s.State.WarningText != text {
		t.Fatalf("State.WarningText = %q, want %q", s.State.WarningText, text)
	}
}

func TestBundleBeginEndRespectsContext(t *testing.T) {
	s := New()

	if err := s.BundleBegin(context.Background()); err != nil {
		t.Fatalf("BundleBegin: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.BundleBegin(ctx); err == nil {
		t.Fatalf("BundleBegin with a cancelled context and an already-held lock should fail")
	}

	// Release the first bundle to avoid leaking state across tests.
	if _, err := s.bundler.End(); err != nil {
		t.Fatalf("Bundler.End: %v", err)
	}
	s.bundleMu.Unlock()
}
