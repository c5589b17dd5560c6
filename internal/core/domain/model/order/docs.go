// Package order provides the domain entities and business logic of the order
// lifecycle. It implements the Order aggregate root with its line items and
// the Status state machine.
//
// The package includes:
//   - Order: the aggregate root owning identity, line items, and lifecycle
//   - Item: one product-quantity entry with a price frozen at creation time
//   - Status: a state machine that enforces the forward-only lifecycle graph
//
// Key business rules:
//   - the declared total must reconcile with the item sum within 0.01
//   - a courier is assigned if and only if the status is courier-owned
//   - delivered and cancelled are terminal; no transition leaves them
//   - exactly one courier can ever claim a given order
package order
