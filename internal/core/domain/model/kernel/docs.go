// Package kernel provides the value objects shared by every atelier aggregate:
//   - UUID: opaque entity identifiers
//   - TicketID: human-facing order codes (CMD-XXXXXX)
//   - AccessCode: workstation login codes (POSTE-XXXX)
//
// Values are immutable and their zero values fail Validate.
package kernel
