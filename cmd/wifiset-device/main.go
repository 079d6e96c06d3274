// Command wifiset-device is a reference WiFiSet device implementation.
//
// It runs the provisioning service against a simulated WiFi backend,
// accepting provisioning peers over TCP and advertising itself via
// mDNS while provisionable.
//
// Usage:
//
//	wifiset-device [flags]
//
// Flags:
//
//	-name string       Advertised device name (default "wifiset-demo")
//	-config string     YAML configuration file path
//	-listen string     TCP listen address (default ":9431")
//	-store string      Credential file path (default "wifiset-credential.json")
//	-log-level string  Log level: debug, info, warn, error (default "info")
//	-event-log string  CBOR protocol event log path (disabled if empty)
//	-interactive       Enable the interactive console
//
// Examples:
//
//	# Start with defaults and an interactive console
//	wifiset-device -interactive
//
//	# Start with a config file and protocol event capture
//	wifiset-device -config device.yaml -event-log events.cbor
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wifiset-protocol/wifiset-go/pkg/discovery"
	"github.com/wifiset-protocol/wifiset-go/pkg/log"
	"github.com/wifiset-protocol/wifiset-go/pkg/network"
	"github.com/wifiset-protocol/wifiset-go/pkg/persistence"
	"github.com/wifiset-protocol/wifiset-go/pkg/provision"
	"github.com/wifiset-protocol/wifiset-go/pkg/transport"
)

// tickInterval is how often the cooperative loop runs.
const tickInterval = 100 * time.Millisecond

var (
	config      Config
	configFile  string
	interactive bool
)

func init() {
	flag.StringVar(&config.DeviceName, "name", "wifiset-demo", "Advertised device name")
	flag.StringVar(&configFile, "config", "", "YAML configuration file path")
	flag.StringVar(&config.Listen, "listen", ":9431", "TCP listen address")
	flag.StringVar(&config.CredentialFile, "store", "wifiset-credential.json", "Credential file path")
	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.StringVar(&config.EventLog, "event-log", "", "CBOR protocol event log path")
	flag.BoolVar(&interactive, "interactive", false, "Enable the interactive console")
}

func main() {
	flag.Parse()

	if configFile != "" {
		if err := loadConfigFile(configFile, &config); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	logger := newLogger(config.LogLevel)

	var protocolLogger log.Logger
	if config.EventLog != "" {
		fileLogger, err := log.NewFileLogger(config.EventLog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open event log: %v\n", err)
			os.Exit(1)
		}
		defer fileLogger.Close()
		protocolLogger = fileLogger
	}

	nets, err := simulatedNetworks(config.Networks)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	backend := network.NewSimulated(nets...)

	tcp, err := transport.NewTCPTransport(transport.TCPConfig{
		Address:    config.Listen,
		DeviceName: config.DeviceName,
		Advertiser: discovery.NewMDNSAdvertiser(discovery.DefaultAdvertiserConfig()),
		Logger:     protocolLogger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start transport: %v\n", err)
		os.Exit(1)
	}

	svc, err := provision.New(provision.Config{
		DeviceName:     config.DeviceName,
		ConnectTimeout: config.ConnectTimeout,
		StatusInterval: config.StatusInterval,
		ScanLimit:      config.ScanLimit,
		Logger:         logger,
		ProtocolLogger: protocolLogger,
	}, provision.Deps{
		Transport: tcp,
		Network:   backend,
		Store:     persistence.NewFileStore(config.CredentialFile),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create service: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc.SetEvents(&loggingEvents{logger: logger})

	if err := svc.Begin(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to begin provisioning: %v\n", err)
		os.Exit(1)
	}

	logger.Info("device started",
		"name", config.DeviceName,
		"listen", tcp.Addr().String(),
		"state", svc.ConnectionState().String(),
		"advertising", svc.IsAdvertising())

	if interactive {
		console, err := newConsole(svc, backend)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to start console: %v\n", err)
			os.Exit(1)
		}
		go console.run(ctx, cancel)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			svc.Tick(ctx)
		case sig := <-sigCh:
			logger.Info("shutting down", "signal", sig.String())
			svc.Close()
			return
		case <-ctx.Done():
			svc.Close()
			return
		}
	}
}

func newLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}
