// Package logging provides structured diagnostic logging for giteadm.
//
// This is the developer-facing log, separate from the in-app log pane the
// user sees. It wraps a zap logger that is silent unless explicitly enabled,
// and writes to a file rather than the terminal: the TUI owns stdout, and any
// stray write would corrupt the composed screen.
//
// # Configuration
//
// Logging is controlled entirely by environment variables:
//
//   - GITEADM_LOG_LEVEL: "debug", "info", "warn" or "error". Unset = silent.
//   - GITEADM_LOG_FILE: output path. Defaults to "giteadm.log" in the
//     working directory when a level is set.
//
// # Usage
//
// Initialize once at startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// then log with structured fields anywhere:
//
//	logging.Info("repository created",
//	    zap.String("owner", owner),
//	    zap.String("name", name),
//	)
//
// All functions are safe for concurrent use.
package logging
