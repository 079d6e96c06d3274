// Package discovery provides mDNS advertising and browsing for WiFiSet
// devices.
//
// A provisionable device registers a _wifiset._tcp service so that a
// provisioning client on the same link can find it without knowing its
// address - the desktop-class stand-in for BLE advertising. TXT records
// carry the device name, protocol version and current connection state.
package discovery
