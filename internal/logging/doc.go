// Package logging provides structured logging for neviweb-cfg.
//
// It wraps a zap logger with package-level helpers. Logging is silent unless a
// level is given on the command line or through NEVIWEB_LOG_LEVEL, so the
// interactive wizard never gets interleaved log lines by default.
//
// # Log Levels
//
//   - Debug: outbound login requests, wizard step transitions
//   - Info: accepted logins, entries created or updated
//   - Warn: rejected logins (bad credentials, service unreachable)
//   - Error: store or configuration failures
//
// # Usage
//
//	if err := logging.Initialize("debug"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
//	logging.LogFlowStep("config", "user", "show_form")
//
// Account names are masked with MaskAccount before they reach a log line and
// passwords are never logged.
package logging
