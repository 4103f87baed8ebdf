package session

import (
	"context"
	"time"

	"github.com/go-atem/atemkit/command"
	"github.com/go-atem/atemkit/event"
	"github.com/go-atem/atemkit/protocol"
	"github.com/go-atem/atemkit/transport"
	"github.com/go-atem/atemkit/wire"
)

// runLoop is the I/O thread (SPEC_FULL.md §5): it drains the datagram
// endpoint, steps the state machine, sends acks/resends, and detects
// timeouts, pacing its idle ticks with a rate.Limiter instead of a plain
// sleep so the cadence is the same primitive the resend-rate limit below
// uses. It is the sole writer of the state mirror.
func (s *Session) runLoop() {
	defer s.wg.Done()

	for {
		select {
		case <-s.stopCh:
			return
		default:
		}

		now := time.Now()

		if s.conn.Dead() {
			s.handleDeadSocket(now)
			s.ticker.Wait(context.Background())
			continue
		}

		s.drainDatagrams(now)

		if s.contact.Expired(now) {
			if s.Phase() == Connected {
				s.Events.Post(event.Event{Kind: event.Disconnect, SessionID: uint16(s.sessionID.Load())})
			}
			if s.retryCh == nil {
				s.retryCh = s.retry.Next()
			}
		}

		if s.retryCh != nil {
			select {
			case <-s.retryCh:
				s.retryCh = nil
				s.reconnect(now)
			default:
			}
		}

		s.ticker.Wait(context.Background())
	}
}

func (s *Session) drainDatagrams(now time.Time) {
	for {
		dg, ok := s.conn.Poll()
		if !ok {
			return
		}
		s.handleDatagram(dg.Data, now)
	}
}

// handleDeadSocket re-dials a fresh endpoint after the background read
// loop stops because of a fatal OS error, pacing the redial attempts the
// same way a silent peer's reconnects are paced.
func (s *Session) handleDeadSocket(now time.Time) {
	if s.Phase() == Connected {
		s.Events.Post(event.Event{Kind: event.Disconnect, SessionID: uint16(s.sessionID.Load())})
	}
	if s.retryCh == nil {
		s.retryCh = s.retry.Next()
		return
	}
	select {
	case <-s.retryCh:
		s.retryCh = nil
	default:
		return
	}

	conn, err := transport.Dial(s.addr)
	if err != nil {
		s.logger.Warnf("redial to %s failed: %v", s.addr, err)
		s.Events.Post(event.Event{Kind: event.Warning, Text: "redial failed: " + err.Error()})
		s.retryCh = s.retry.Next()
		return
	}
	s.conn.Close()
	s.conn = conn
	s.reconnect(now)
}

// reconnect resets handshake state and resends the hello packet over the
// existing socket. It is used both for the initial Connect and for every
// timeout-driven retry afterward.
func (s *Session) reconnect(now time.Time) {
	s.missed.Reset()
	s.localID.Reset()
	s.sessionID.Store(0)
	s.switcherAlive.Store(false)
	s.handshakeStarted.Store(false)
	s.initPayloadSent.Store(false)
	s.waitingForIncoming.Store(false)
	s.watermark.Store(watermarkUnset)
	s.phase.Store(uint32(HelloSent))

	if err := s.sendHello(now); err != nil {
		s.Events.Post(event.Event{Kind: event.Warning, Text: "send hello: " + err.Error()})
	}
}

// handleDatagram applies one inbound datagram to the state machine. now
// is used for the contact watch; it is passed in rather than read fresh
// so every datagram processed within one tick shares a timestamp.
func (s *Session) handleDatagram(data []byte, now time.Time) {
	if len(data) < protocol.HeaderLen {
		s.logger.Warnf("dropping malformed packet: %d bytes, shorter than header", len(data))
		s.Events.Post(event.Event{Kind: event.Warning, Text: "malformed packet: shorter than header"})
		return
	}

	buf := wire.WrapBuffer(data)
	header := wire.DecodeHeader(buf)

	if int(header.Length) > len(data) {
		s.logger.Warnf("dropping malformed packet: header.Length=%d exceeds datagram size %d", header.Length, len(data))
		s.Events.Post(event.Event{Kind: event.Warning, Text: "malformed packet: length exceeds datagram size"})
		return
	}

	if !s.switcherAlive.Load() {
		s.switcherAlive.Store(true)
	}
	if s.pingMode {
		return
	}

	sid := uint16(s.sessionID.Load())
	if sid == 0 {
		if header.SessionID != 0 {
			s.sessionID.Store(uint32(header.SessionID))
			sid = header.SessionID
		}
	} else if header.SessionID != sid {
		// A packet from a session we don't recognize; ignore it and wait
		// for the next one rather than tearing down the current session.
		return
	}

	s.contact.Touch(now)
	s.waitingForIncoming.Store(false)

	phase := s.Phase()

	if phase == HelloSent {
		s.handleHelloReply(data, header, now)
		return
	}

	if int(header.PacketID) >= 1 && int(header.PacketID) <= protocol.MaxInitPacketCount {
		s.missed.Clear(int(header.PacketID))
	}

	if !s.initPayloadSent.Load() && header.Length == uint16(protocol.HeaderLen) && header.PacketID > 1 {
		s.initPayloadSent.Store(true)
		s.watermark.Store(int64(header.PacketID))
	}

	switch {
	case header.Flags.Has(protocol.FlagAckRequest) && (phase == Connected || !header.Flags.Has(protocol.FlagResend)):
		s.sendAck(header.PacketID)
	case s.initPayloadSent.Load() && header.Flags.Has(protocol.FlagRequestNextAfter) && phase == Connected:
		s.sendResendStub(header.ResendID)
	}

	if !header.Flags.Has(protocol.FlagHello) && int(header.Length) > protocol.HeaderLen {
		s.decodeSubPackets(buf, int(header.Length))
	}

	if phase == Syncing && s.initPayloadSent.Load() && !s.waitingForIncoming.Load() {
		s.advanceSync()
	}
}

// handleHelloReply processes the one datagram expected while in
// HelloSent: the switcher's hello acknowledgment.
func (s *Session) handleHelloReply(data []byte, header wire.Header, now time.Time) {
	if len(data) > protocol.HeaderLen {
		bookStatus := data[protocol.HeaderLen]
		if bookStatus == protocol.HelloBookedStatus {
			s.Events.Post(event.Event{Kind: event.Warning, Text: "switcher reports no free session slots"})
			s.reconnect(now)
			return
		}
	}

	s.handshakeStarted.Store(true)
	s.sendHelloAck(now)

	s.phase.Store(uint32(HelloAcked))
	s.phase.Store(uint32(Syncing))
}

// advanceSync checks whether every packet id up to the initial-payload
// watermark has been accounted for, requesting a retransmission for the
// lowest still-missing one or, once none remain, declaring the session
// Connected.
func (s *Session) advanceSync() {
	watermark := int(s.watermark.Load())
	if missing, ok := s.missed.FirstMissing(watermark); ok {
		if s.resendLimiter.Allow() {
			s.sendRequestNextAfter(missing)
			s.waitingForIncoming.Store(true)
		}
		return
	}

	s.phase.Store(uint32(Connected))
	s.retry.Reset()
	s.Events.Post(event.Event{Kind: event.Connect, SessionID: uint16(s.sessionID.Load())})
}

// decodeSubPackets walks every command sub-packet in [HeaderLen, totalLen)
// and applies it to the state mirror, posting a receive event for each
// recognized tag, a warning for anything malformed or unrecognized, and an
// additional dedicated warning event when the decoded tag is Warn and
// carries non-empty text (see SPEC_FULL.md §9).
func (s *Session) decodeSubPackets(buf *wire.Buffer, totalLen int) {
	offset := protocol.HeaderLen
	for offset+protocol.CmdHeaderLen <= totalLen {
		subLen := int(buf.U16(offset))
		if subLen < protocol.CmdHeaderLen || offset+subLen > totalLen {
			s.Events.Post(event.Event{Kind: event.Warning, Text: "malformed sub-packet: bad length"})
			return
		}

		tag := protocol.Tag(buf.String(offset+protocol.CmdTagOffset, protocol.CmdTagLen))
		payload := wire.WrapBuffer(buf.Bytes()[offset+protocol.CmdHeaderLen : offset+subLen])

		ok, err := command.Decode(s.State, tag, payload)
		if err != nil {
			s.logger.Warnf("decode %q: %v", tag, err)
			s.Events.Post(event.Event{Kind: event.Warning, Tag: tag, Text: err.Error()})
		} else if ok {
			name, _ := protocol.Name(tag)
			s.logger.Debugf("decoded %q (%s)", tag, name)
			s.Events.Post(event.Event{Kind: event.Receive, SessionID: uint16(s.sessionID.Load()), Tag: tag, Name: name})

			// The original client special-cases Warn in its receive handler
			// (ATEMMax.py _onReceive): a non-empty warningText is promoted
			// into its own "warning" event rather than left as a plain
			// receive notification.
			if tag == protocol.TagWarning && s.State.WarningText != "" {
				s.logger.Warnf("switcher warning: %s", s.State.WarningText)
				s.Events.Post(event.Event{Kind: event.Warning, SessionID: uint16(s.sessionID.Load()), Tag: tag, Text: s.State.WarningText})
			}
		}

		offset += subLen
	}
}

// sendHello writes the 20-byte hello packet: a 12-byte header with the
// hello flag set, followed by two distinguished capability bytes at
// logical offsets 9 and 12 within the packet.
func (s *Session) sendHello(now time.Time) error {
	buf := wire.NewBuffer(protocol.HeaderLen + protocol.CmdHeaderLen)
	header := wire.Header{Flags: protocol.FlagHello, Length: uint16(buf.Len())}
	header.Encode(buf)
	buf.SetU8(protocol.HelloCapabilityOffset, protocol.HelloCapabilityByte)
	buf.SetU8(protocol.HelloVersionOffset, protocol.HelloVersionByte)

	s.contact.Touch(now)
	return s.conn.Send(buf.Bytes())
}

// sendHelloAck acknowledges a successful hello reply. It reuses the same
// byte position the outbound hello used for its capability byte, this
// time carrying the ack's distinguished reserved byte instead.
func (s *Session) sendHelloAck(now time.Time) {
	buf := wire.NewBuffer(protocol.HeaderLen)
	header := wire.Header{
		Flags:     protocol.FlagAck,
		Length:    uint16(protocol.HeaderLen),
		SessionID: uint16(s.sessionID.Load()),
	}
	header.Encode(buf)
	buf.SetU8(protocol.HelloCapabilityOffset, protocol.HelloAckReservedByte)

	if err := s.conn.Send(buf.Bytes()); err != nil {
		s.Events.Post(event.Event{Kind: event.Warning, Text: "send hello ack: " + err.Error()})
	}
}

// sendAck acknowledges remoteID, the packet id carried by the inbound
// datagram that requested it.
func (s *Session) sendAck(remoteID uint16) {
	buf := wire.NewBuffer(protocol.HeaderLen)
	header := wire.Header{
		Flags:     protocol.FlagAck,
		Length:    uint16(protocol.HeaderLen),
		SessionID: uint16(s.sessionID.Load()),
		AckID:     remoteID,
	}
	header.Encode(buf)

	if err := s.conn.Send(buf.Bytes()); err != nil {
		s.Events.Post(event.Event{Kind: event.Warning, Text: "send ack: " + err.Error()})
	}
}

// sendRequestNextAfter asks the peer to retransmit everything after
// missingID-1, i.e. starting with missingID.
func (s *Session) sendRequestNextAfter(missingID int) {
	buf := wire.NewBuffer(protocol.HeaderLen)
	header := wire.Header{
		Flags:     protocol.FlagRequestNextAfter,
		Length:    uint16(protocol.HeaderLen),
		SessionID: uint16(s.sessionID.Load()),
		ResendID:  uint16(missingID - 1),
		Reserved:  0x0100,
	}
	header.Encode(buf)

	if err := s.conn.Send(buf.Bytes()); err != nil {
		s.Events.Post(event.Event{Kind: event.Warning, Text: "send requestNextAfter: " + err.Error()})
	}
}

// sendResendStub answers the peer's own requestNextAfter for packetID
// with an empty packet carrying that id back, so the peer's resend logic
// doesn't stall waiting for a retransmission this client never actually
// had queued.
func (s *Session) sendResendStub(packetID uint16) {
	buf := wire.NewBuffer(protocol.HeaderLen)
	header := wire.Header{
		Flags:     protocol.FlagAckRequest,
		Length:    uint16(protocol.HeaderLen),
		SessionID: uint16(s.sessionID.Load()),
		PacketID:  packetID,
	}
	header.Encode(buf)

	if err := s.conn.Send(buf.Bytes()); err != nil {
		s.Events.Post(event.Event{Kind: event.Warning, Text: "send resend stub: " + err.Error()})
	}
}
