package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/netip"
	"strings"

	"github.com/chzyer/readline"

	"github.com/wifiset-protocol/wifiset-go/pkg/network"
	"github.com/wifiset-protocol/wifiset-go/pkg/provision"
	"github.com/wifiset-protocol/wifiset-go/pkg/wire"
)

// loggingEvents logs every provisioning notification.
type loggingEvents struct {
	provision.NopEvents
	logger *slog.Logger
}

func (e *loggingEvents) CredentialsReceived(ssid, password string) {
	e.logger.Info("credentials received", "ssid", ssid)
}

func (e *loggingEvents) ConnectionStatusChanged(state wire.ConnectionState) {
	e.logger.Info("connection status changed", "state", state.String())
}

func (e *loggingEvents) NetworkConnected(address netip.Addr) {
	e.logger.Info("network connected", "address", address.String())
}

func (e *loggingEvents) NetworkConnectionFailed() {
	e.logger.Warn("network connection failed")
}

func (e *loggingEvents) PeerConnected() {
	e.logger.Info("provisioning peer connected")
}

func (e *loggingEvents) PeerDisconnected() {
	e.logger.Info("provisioning peer disconnected")
}

// console is the interactive device console.
type console struct {
	svc     *provision.Service
	backend *network.Simulated
	rl      *readline.Instance
}

func newConsole(svc *provision.Service, backend *network.Simulated) (*console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "device> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &console{svc: svc, backend: backend, rl: rl}, nil
}

func (c *console) run(ctx context.Context, cancel context.CancelFunc) {
	defer c.rl.Close()

	c.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			cancel()
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		fields := strings.Fields(input)
		switch fields[0] {
		case "help":
			c.printHelp()
		case "status":
			c.printStatus()
		case "networks":
			c.printNetworks(ctx)
		case "connect":
			c.connect(ctx, fields[1:])
		case "disconnect":
			c.svc.DisconnectNetwork()
			fmt.Fprintln(c.rl.Stdout(), "Disconnected")
		case "clear":
			if err := c.svc.ClearCredentials(); err != nil {
				fmt.Fprintf(c.rl.Stdout(), "Clear failed: %v\n", err)
			} else {
				fmt.Fprintln(c.rl.Stdout(), "Credentials cleared")
			}
		case "advertise":
			c.advertise(fields[1:])
		case "quit", "exit":
			cancel()
			return
		default:
			fmt.Fprintf(c.rl.Stdout(), "Unknown command: %s (try 'help')\n", fields[0])
		}
	}
}

func (c *console) printHelp() {
	out := c.rl.Stdout()
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  status                    Show connection state")
	fmt.Fprintln(out, "  networks                  List visible networks")
	fmt.Fprintln(out, "  connect <ssid> [pass]     Join a network (persists the credential)")
	fmt.Fprintln(out, "  disconnect                Leave the current network")
	fmt.Fprintln(out, "  clear                     Forget the stored credential")
	fmt.Fprintln(out, "  advertise on|off          Control provisioning advertising")
	fmt.Fprintln(out, "  quit                      Exit")
}

func (c *console) printStatus() {
	out := c.rl.Stdout()
	fmt.Fprintf(out, "State:       %s\n", c.svc.ConnectionState())
	fmt.Fprintf(out, "Advertising: %v\n", c.svc.IsAdvertising())
	if c.svc.IsConnected() {
		fmt.Fprintf(out, "SSID:        %s\n", c.svc.SSID())
		fmt.Fprintf(out, "Address:     %s\n", c.svc.Address())
		fmt.Fprintf(out, "Signal:      %d dBm\n", c.svc.Signal())
	}
	if saved, found, err := c.svc.SavedCredential(); err == nil && found {
		fmt.Fprintf(out, "Stored SSID: %s\n", saved.SSID)
	}
}

func (c *console) printNetworks(ctx context.Context) {
	out := c.rl.Stdout()
	entries, err := c.backend.Scan(ctx)
	if err != nil {
		fmt.Fprintf(out, "Scan failed: %v\n", err)
		return
	}
	for _, e := range entries {
		fmt.Fprintf(out, "  %-32s %4d dBm  ch %-3d %s\n", e.SSID, e.Signal, e.Channel, e.Security)
	}
}

func (c *console) connect(ctx context.Context, args []string) {
	out := c.rl.Stdout()
	if len(args) == 0 {
		fmt.Fprintln(out, "Usage: connect <ssid> [password]")
		return
	}
	password := ""
	if len(args) > 1 {
		password = args[1]
	}
	if err := c.svc.ConnectNetwork(ctx, args[0], password, true); err != nil {
		fmt.Fprintf(out, "Connect failed: %v\n", err)
		return
	}
	fmt.Fprintf(out, "State: %s\n", c.svc.ConnectionState())
}

func (c *console) advertise(args []string) {
	out := c.rl.Stdout()
	if len(args) == 0 {
		fmt.Fprintln(out, "Usage: advertise on|off")
		return
	}
	var err error
	switch args[0] {
	case "on":
		err = c.svc.StartAdvertising()
	case "off":
		err = c.svc.StopAdvertising()
	default:
		fmt.Fprintln(out, "Usage: advertise on|off")
		return
	}
	if err != nil {
		fmt.Fprintf(out, "Failed: %v\n", err)
	}
}
