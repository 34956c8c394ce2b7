// Package kernel holds the value objects shared by every aggregate of the dispatch domain:
// identifiers, WhatsApp-capable phone numbers and the clock that stamps orders and assignments.
//
// Values are immutable and safe for concurrent use. The zero value of each type is invalid
// and is rejected by its Validate method.
package kernel
