// Command wifiset-provision is a provisioning peer simulator.
//
// It connects to a WiFiSet device over TCP (directly or located via
// mDNS), prints the device's network list, and optionally writes a
// credential and reports the resulting acknowledgment and status.
//
// Usage:
//
//	wifiset-provision [flags]
//
// Flags:
//
//	-addr string     Device address (host:port); skips mDNS discovery
//	-device string   Device name to locate via mDNS
//	-ssid string     Network to provision; list-only when empty
//	-password string Password for the provisioned network
//	-timeout duration Frame receive timeout (default 5s)
//
// Examples:
//
//	# Discover a device and print its networks
//	wifiset-provision -device wifiset-demo
//
//	# Provision a credential directly
//	wifiset-provision -addr 192.168.1.50:9431 -ssid HomeNetwork -password hunter22
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/wifiset-protocol/wifiset-go/pkg/discovery"
	"github.com/wifiset-protocol/wifiset-go/pkg/transport"
	"github.com/wifiset-protocol/wifiset-go/pkg/wire"
)

var (
	addr     string
	device   string
	ssid     string
	password string
	timeout  time.Duration
)

func init() {
	flag.StringVar(&addr, "addr", "", "Device address (host:port); skips mDNS discovery")
	flag.StringVar(&device, "device", "", "Device name to locate via mDNS")
	flag.StringVar(&ssid, "ssid", "", "Network to provision; list-only when empty")
	flag.StringVar(&password, "password", "", "Password for the provisioned network")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "Frame receive timeout")
}

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	target := addr
	if target == "" {
		if device == "" {
			return fmt.Errorf("either -addr or -device is required")
		}
		svc, err := discovery.Find(ctx, device)
		if err != nil {
			return fmt.Errorf("device %q not found: %w", device, err)
		}
		if len(svc.Addresses) == 0 {
			return fmt.Errorf("device %q resolved without addresses", device)
		}
		target = fmt.Sprintf("%s:%d", svc.Addresses[0], svc.Port)
		fmt.Printf("Found %q at %s (state: %s)\n", svc.DeviceName, target, svc.State)
	}

	conn, err := transport.Dial(ctx, target, transport.DialConfig{})
	if err != nil {
		return err
	}
	defer conn.Close()
	fmt.Printf("Connected to %s\n", conn.RemoteAddr())

	// The device responds to a new peer with its network list followed
	// by a status frame.
	if err := receiveList(conn); err != nil {
		return err
	}

	if ssid == "" {
		return nil
	}

	builder := wire.NewMessageBuilder()
	frame, err := builder.BuildCredentialWrite(wire.Credential{SSID: ssid, Password: password})
	if err != nil {
		return fmt.Errorf("invalid credential: %w", err)
	}
	if err := conn.Send(frame); err != nil {
		return err
	}
	fmt.Printf("Credential for %q sent\n", ssid)

	return watchOutcome(conn)
}

// receiveList consumes the list burst and the trailing status frame.
func receiveList(conn *transport.PeerConn) error {
	count := 0
	for {
		frame, err := conn.Receive(timeout)
		if err != nil {
			return fmt.Errorf("waiting for network list: %w", err)
		}

		header, err := wire.ParseHeader(frame)
		if err != nil {
			return err
		}

		switch header.Type {
		case wire.MessageTypeListStart:
			fmt.Println("Networks:")

		case wire.MessageTypeNetworkEntry:
			entry, err := wire.ParseNetworkEntry(frame)
			if err != nil {
				return err
			}
			count++
			fmt.Printf("  %-32s %4d dBm  ch %-3d %s\n", entry.SSID, entry.Signal, entry.Channel, entry.Security)

		case wire.MessageTypeListEnd:
			total, err := wire.ParseListEnd(frame)
			if err != nil {
				return err
			}
			if total > count {
				fmt.Printf("  (%d more not transmitted)\n", total-count)
			}

		case wire.MessageTypeStatusResponse:
			status, err := wire.ParseStatusResponse(frame)
			if err != nil {
				return err
			}
			printStatus(status)
			return nil

		case wire.MessageTypeError:
			report, err := wire.ParseError(frame)
			if err != nil {
				return err
			}
			return fmt.Errorf("device error %s: %s", report.Code, report.Message)

		default:
			return fmt.Errorf("unexpected frame %s during list", header.Type)
		}
	}
}

// watchOutcome reports the ack and the status frames that follow a
// credential write, until the device settles out of Connecting.
func watchOutcome(conn *transport.PeerConn) error {
	for {
		frame, err := conn.Receive(timeout)
		if err != nil {
			return fmt.Errorf("waiting for outcome: %w", err)
		}

		header, err := wire.ParseHeader(frame)
		if err != nil {
			return err
		}

		switch header.Type {
		case wire.MessageTypeCredentialAck:
			status, err := wire.ParseCredentialAck(frame)
			if err != nil {
				return err
			}
			fmt.Printf("Ack: %s\n", status)
			if status != wire.AckSuccess {
				// An ERROR frame with detail follows.
				continue
			}

		case wire.MessageTypeStatusResponse:
			status, err := wire.ParseStatusResponse(frame)
			if err != nil {
				return err
			}
			printStatus(status)
			switch status.State {
			case wire.StateConnected:
				fmt.Println("Provisioning complete")
				return nil
			case wire.StateConnectionFailed:
				return fmt.Errorf("device failed to join the network")
			}

		case wire.MessageTypeError:
			report, err := wire.ParseError(frame)
			if err != nil {
				return err
			}
			return fmt.Errorf("device error %s: %s", report.Code, report.Message)

		default:
			return fmt.Errorf("unexpected frame %s", header.Type)
		}
	}
}

func printStatus(status wire.Status) {
	fmt.Printf("Status: %s", status.State)
	if status.SSID != "" {
		fmt.Printf("  ssid=%s signal=%d dBm addr=%s", status.SSID, status.Signal, status.Address)
	}
	fmt.Println()
}
