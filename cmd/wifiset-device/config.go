package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/wifiset-protocol/wifiset-go/pkg/network"
	"github.com/wifiset-protocol/wifiset-go/pkg/wire"
)

// Config holds the device configuration, settable by flags and
// optionally overridden from a YAML file.
type Config struct {
	DeviceName     string        `yaml:"device_name"`
	Listen         string        `yaml:"listen"`
	CredentialFile string        `yaml:"credential_file"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	StatusInterval time.Duration `yaml:"status_interval"`
	ScanLimit      int           `yaml:"scan_limit"`
	LogLevel       string        `yaml:"log_level"`
	EventLog       string        `yaml:"event_log"`

	// Networks visible to the simulated WiFi backend.
	Networks []NetworkConfig `yaml:"networks"`
}

// NetworkConfig describes one simulated network.
type NetworkConfig struct {
	SSID     string `yaml:"ssid"`
	Password string `yaml:"password"`
	Signal   int8   `yaml:"signal"`
	Security string `yaml:"security"`
	Channel  uint8  `yaml:"channel"`
}

// loadConfigFile merges a YAML config file over the current config.
func loadConfigFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// securityFromName maps a config security name to the wire enum.
func securityFromName(name string) (wire.SecurityType, error) {
	switch name {
	case "", "open":
		return wire.SecurityOpen, nil
	case "wep":
		return wire.SecurityWEP, nil
	case "wpa_psk", "wpa", "wpa2":
		return wire.SecurityWPAPSK, nil
	case "wpa2_enterprise":
		return wire.SecurityWPA2Enterprise, nil
	case "wpa3":
		return wire.SecurityWPA3, nil
	default:
		return 0, fmt.Errorf("unknown security type: %s", name)
	}
}

// simulatedNetworks builds the simulated backend's network set. With no
// configured networks a small default set is used so the demo has
// something to show.
func simulatedNetworks(configs []NetworkConfig) ([]network.SimulatedNetwork, error) {
	if len(configs) == 0 {
		return []network.SimulatedNetwork{
			{SSID: "HomeNetwork", Password: "hunter22", Signal: -48, Security: wire.SecurityWPAPSK, Channel: 6},
			{SSID: "CoffeeShop", Signal: -71, Security: wire.SecurityOpen, Channel: 11},
			{SSID: "Neighbor5G", Password: "secret99", Signal: -82, Security: wire.SecurityWPA3, Channel: 36},
		}, nil
	}

	nets := make([]network.SimulatedNetwork, 0, len(configs))
	for _, c := range configs {
		security, err := securityFromName(c.Security)
		if err != nil {
			return nil, err
		}
		nets = append(nets, network.SimulatedNetwork{
			SSID:     c.SSID,
			Password: c.Password,
			Signal:   c.Signal,
			Security: security,
			Channel:  c.Channel,
		})
	}
	return nets, nil
}
