// Package error provides the coded error type used across findpay.
//
// Package: error
// Title: findpay Error Handling
// Description: Structured errors carrying a stable code, a severity, the operation
//              that produced them and free-form details. The message returned by
//              Error() is the user-facing text; diagnostic information lives in the
//              details so it never leaks into what the user sees.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-10-17 v0.2.0: Command parsing codes, errors.As based helpers
//
// Usage:
//   import mdwerror "github.com/msto63/findpay/foundation/core/error"
//
//   err := mdwerror.New("Amount cannot be empty.").
//     WithCode(mdwerror.CodeEmptyAmount).
//     WithOperation("findpayment.Parse")
//
//   if mdwerror.HasCode(err, mdwerror.CodeEmptyAmount) {
//     // show the message to the user and let them retry
//   }
package error
