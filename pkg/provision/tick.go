package provision

import (
	"context"
	"time"

	"github.com/wifiset-protocol/wifiset-go/pkg/wire"
)

// Tick performs all work deferred since the last call. The order is
// fixed: peer-connect handling first, then queued inbound frames, then
// peer-disconnect handling, then link monitoring. A connect and
// disconnect arriving between two ticks therefore resolve as a full
// connect cycle followed by the disconnect.
func (s *Service) Tick(ctx context.Context) {
	s.mu.Lock()
	if !s.begun || s.closed {
		s.mu.Unlock()
		return
	}
	events := s.events
	s.mu.Unlock()

	if s.pendingConnect.CompareAndSwap(true, false) {
		events.PeerConnected()
		s.sendNetworkList(ctx)
		s.pushStatus()
	}

	for _, frame := range s.drainInbound() {
		s.handleFrame(ctx, frame)
	}

	if s.pendingDisconnect.CompareAndSwap(true, false) {
		events.PeerDisconnected()
		if !s.IsConnected() {
			_ = s.transport.StartAdvertising()
		}
	}

	s.monitor()
}

// drainInbound takes the queued frames, leaving an empty queue.
func (s *Service) drainInbound() [][]byte {
	s.inboundMu.Lock()
	frames := s.inbound
	s.inbound = nil
	s.inboundMu.Unlock()
	return frames
}

// sendNetworkList scans and transmits the list burst: LIST_START, one
// NETWORK_ENTRY per network up to the scan limit, LIST_END with the
// true count. Losing the peer mid-burst aborts immediately; the peer
// must treat a list without LIST_END as incomplete.
func (s *Service) sendNetworkList(ctx context.Context) {
	entries, err := s.network.Scan(ctx)
	if err != nil {
		s.logf("scan failed", "error", err)
		s.sendError(wire.ErrorCodeScanFailed, err.Error())
		return
	}

	total := len(entries)
	if total > s.config.ScanLimit {
		entries = entries[:s.config.ScanLimit]
	}

	s.mu.Lock()
	start := s.builder.BuildListStart()
	s.mu.Unlock()
	if !s.sendFrame(start) {
		return
	}

	for _, entry := range entries {
		if !s.transport.PeerConnected() {
			return
		}
		s.mu.Lock()
		frame := s.builder.BuildNetworkEntry(entry)
		s.mu.Unlock()
		if !s.sendFrame(frame) {
			return
		}
	}

	if !s.transport.PeerConnected() {
		return
	}
	s.mu.Lock()
	end := s.builder.BuildListEnd(total)
	s.mu.Unlock()
	s.sendFrame(end)
	s.logf("network list sent", "count", total)
}

// handleFrame dispatches one queued inbound frame.
func (s *Service) handleFrame(ctx context.Context, frame []byte) {
	header, err := wire.ParseHeader(frame)
	if err != nil {
		s.sendError(wire.ErrorCodeInvalidMessageFormat, err.Error())
		return
	}

	switch header.Type {
	case wire.MessageTypeCredentialWrite:
		s.handleCredentialWrite(ctx, frame)
	case wire.MessageTypeStatusRequest:
		if err := wire.ParseStatusRequest(frame); err != nil {
			s.sendError(wire.ErrorCodeInvalidMessageFormat, err.Error())
			return
		}
		s.pushStatus()
	default:
		s.logf("unknown message type", "type", header.Type.String())
		s.sendError(wire.ErrorCodeUnknownMessageType, header.Type.String())
	}
}

// handleCredentialWrite parses, acks, persists and applies a credential
// write. The ack always goes out first; an ERROR frame with detail
// follows on failure.
func (s *Service) handleCredentialWrite(ctx context.Context, frame []byte) {
	credential, err := wire.ParseCredentialWrite(frame)
	if err != nil {
		s.sendAck(wire.AckStatusForError(err))
		s.sendError(wire.ErrorCodeCredentialWrite, err.Error())
		return
	}

	s.mu.Lock()
	events := s.events
	s.mu.Unlock()
	events.CredentialsReceived(credential.SSID, credential.Password)

	if err := s.store.Save(credential); err != nil {
		// Storage failure aborts before any connect attempt; the
		// previous credential and state stay in force.
		s.logf("credential save failed", "error", err)
		s.sendAck(wire.AckStorageFailure)
		s.sendError(wire.ErrorCodeStorage, err.Error())
		return
	}

	s.sendAck(wire.AckSuccess)
	s.connectAttempt(ctx, credential)
}

// monitor polls the network link and handles periodic re-announcement.
func (s *Service) monitor() {
	if s.ConnectionState() == wire.StateConnected && !s.network.IsAssociated() {
		s.setState(wire.StateConfiguredNotConnected, "link lost")
	}

	s.mu.Lock()
	due := time.Since(s.lastStatusAt) >= s.config.StatusInterval
	s.mu.Unlock()
	if due {
		s.pushStatus()
	}
}

// sendFrame sends one frame to the peer, reporting delivery. A missing
// peer or transport error reads as not delivered.
func (s *Service) sendFrame(frame []byte) bool {
	return s.transport.Send(frame) == nil
}

func (s *Service) sendAck(status wire.AckStatus) {
	s.mu.Lock()
	frame := s.builder.BuildCredentialAck(status)
	s.mu.Unlock()
	s.sendFrame(frame)
}

func (s *Service) sendError(code wire.ErrorCode, message string) {
	s.mu.Lock()
	frame := s.builder.BuildError(code, message)
	s.mu.Unlock()
	s.sendFrame(frame)
}
