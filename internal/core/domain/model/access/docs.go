// Package access implements the access-mode gate of a workshop device.
//
// A device is always in one of three modes. Client mode is the public
// default and every exit returns to it. Manager mode is entered with the
// workshop's manager code; workstation mode with a workstation access code,
// which binds the session to that workstation.
//
// Two things are gated:
//   - screens, through per-mode allow-lists with redirection to a default
//   - actions on the order pipeline, through Actor.Authorize
//
// The subscription state only narrows the manager screens. It never blocks
// an action.
package access
