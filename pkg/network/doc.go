// Package network abstracts the WiFi backend the provisioning service
// drives: scanning for nearby networks, joining one with a credential,
// and reporting association state.
//
// Real deployments implement Interface on top of the platform's WiFi
// stack (wpa_supplicant, nmcli, a vendor SDK). The Simulated
// implementation backs demos and tests.
package network
