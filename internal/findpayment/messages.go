// ============================================================================
// findpay - Payment filter command parsing
// ============================================================================
//
// Package:     findpayment
// Description: User-facing messages for findpayment parse failures
// Author:      Mike Stoffels
// Created:     2025-10-17
// License:     MIT
// ============================================================================

package findpayment

// CommandWord is the keyword that introduces the command
const CommandWord = "findpayment"

// MessageUsage describes the command syntax
const MessageUsage = CommandWord + `: Finds payments of the member identified by the index number used in the displayed member list.
Exactly one filter must be given.
Parameters: INDEX (must be a positive integer) [a/AMOUNT | d/DATE | r/REMARK]
Examples: ` + CommandWord + ` 1 a/23.50, ` + CommandWord + ` 3 d/2023-12-30, ` + CommandWord + ` 4 r/cca shirt`

// MessageInvalidCommandFormat is prefixed to the usage text for malformed input
const MessageInvalidCommandFormat = "Invalid command format! \n"

const (
	MessageMissingFilter  = "Please provide one filter: a/AMOUNT, d/DATE or r/REMARK"
	MessageTooManyFilters = "Please specify only one filter at a time."
	MessageInvalidAmount  = "Invalid amount: must be positive and ≤ 2 decimal places."
	MessageInvalidDate    = "Invalid date. Please use the strict format YYYY-MM-DD and ensure it is not in the future."
	MessageEmptyRemark    = "Remark cannot be empty."
	MessageEmptyAmount    = "Amount cannot be empty."
	MessageEmptyDate      = "Date cannot be empty."

	MessageDuplicateFilter = "Multiple values specified for the following single-valued field(s): "
	MessageUnknownFilter   = "Unknown filter: %s (valid filters are a/AMOUNT, d/DATE and r/REMARK)"
	MessageInputTooLong    = "Input exceeds the maximum length of %d characters."
)
