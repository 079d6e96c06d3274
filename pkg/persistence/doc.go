// Package persistence stores the provisioned WiFi credential across
// restarts. The provisioning service saves before attempting a
// connection and clears on explicit credential removal.
package persistence
