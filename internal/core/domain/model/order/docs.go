// Package order models a production job of the atelier and its place in the
// fulfillment pipeline.
//
// The package includes:
//   - Order: the job itself, identified by a UUID and a human-facing TicketID
//   - Status: the five pipeline states, PendingValidation through Delivered
//   - TransitionPolicy: the rule deciding which status changes are accepted
//   - Routing: where the order currently sits (unassigned, waiting room, workstation)
//
// Key business rules:
//   - A new order starts in PendingValidation and is unassigned
//   - The ticket identifier is set once at creation and never changes
//   - Claiming forces Sewing and requires a priced order sitting in the waiting room
package order
