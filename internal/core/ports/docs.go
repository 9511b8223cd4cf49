// Package ports defines the contracts between the application core and its adapters.
//
// Repositories operate on the working copy of the atelier aggregate held by
// a UnitOfWork; AtelierStore is the remote aggregate store the Synchronizer
// reads from and writes to; SnapshotTracker receives every committed state.
package ports
