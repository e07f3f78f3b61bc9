// Package log provides structured logging for findpay.
//
// Package: log
// Title: findpay Structured Logging
// Description: Leveled, structured logging with persistent context fields, request
//              IDs and JSON or text output. Coded errors from the error package are
//              logged with their code and severity.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2025-10-17 v0.2.0: Dropped async output, timers and caller capture
//
// Usage:
//   import mdwlog "github.com/msto63/findpay/foundation/core/log"
//
//   logger := mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelDebug, Format: mdwlog.FormatText})
//   logger = logger.WithField("component", "findpayment")
//   logger.Debug("parsed command", mdwlog.Fields{"index": 1})
//   logger.LogError(err)
package log
