// Package log provides structured protocol logging for WiFiSet.
//
// This package defines the Logger interface and Event types for
// capturing protocol-level events (frames in and out, connection state
// changes, errors). It is separate from operational logging (slog) -
// protocol capture provides a machine-readable trace of a provisioning
// exchange for debugging and analysis.
//
// Applications configure logging by providing a Logger implementation:
//
//	// For development: log to console via slog
//	cfg.ProtocolLogger = log.NewSlogAdapter(slog.Default())
//
//	// For production: write to binary file
//	cfg.ProtocolLogger, _ = log.NewFileLogger("/var/log/wifiset/device.wlog")
//
//	// Both: use MultiLogger
//	cfg.ProtocolLogger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// Log files are a CBOR event stream with .wlog extension.
package log
