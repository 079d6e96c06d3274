// Package transport provides the peer-facing channel for WiFiSet
// provisioning.
//
// The protocol assumes a connection-oriented, characteristic-style
// channel: one peer at a time, point-to-point frame delivery with no
// retransmission, and event notifications (peer connected, peer
// disconnected, inbound frame) that arrive on the transport's own
// goroutine. The provisioning session never does work inside those
// notifications; it defers everything to its cooperative tick.
//
// Two implementations are provided:
//
//   - Loopback: an in-memory pair for tests and demos.
//   - TCPTransport: a single-peer TCP server standing in for a BLE
//     characteristic channel on desktop-class targets, optionally
//     advertised over mDNS.
//
// Frames are self-delimiting via the 4-byte wire header, so the TCP
// byte stream needs no additional length prefix.
package transport
