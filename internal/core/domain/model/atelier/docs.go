// Package atelier contains the aggregate root persisted as a single unit:
// the workshop profile with its subscription, every order, workstation,
// client and model, the notification log, and opaque sections owned by
// other parts of the product.
//
// The aggregate enforces the cross-entity rules that no single entity can
// check on its own:
//   - ticket ids are unique across orders
//   - access codes are unique across workstations
//   - an order routed to a workstation references one that exists
package atelier
