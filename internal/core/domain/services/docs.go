// Package services provides domain services that orchestrate business operations
// across several entities of the atelier aggregate.
//
// The package includes:
//   - Dispatcher: routes orders to the waiting room or a workstation, and implements claims
//   - Pipeline: applies status transitions under a configurable TransitionPolicy
//   - NotificationEmitter: turns pipeline and dispatch events into log entries
//
// Services mutate the entities they are given and never persist anything;
// command handlers load and store the entities through a unit of work.
package services
