// Package workstation models the physical production posts of an atelier.
//
// A workstation is the "worker" of the dispatch mechanism: orders are routed
// to it by a manager, or claimed by it from the shared pool. Its access code
// is the identity a device presents to enter workstation mode.
package workstation
