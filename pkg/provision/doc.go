// Package provision implements the device side of the WiFiSet
// provisioning protocol: the session state machine, the deferred
// execution bridge between transport callbacks and the application
// loop, and status reporting.
//
// A Service is constructed with its collaborators (transport, network
// backend, credential store), started with Begin, and then driven
// cooperatively by calling Tick from the application's main loop.
// Transport callbacks never do protocol work themselves; they only
// record that work is pending, and the next Tick performs it.
package provision
