// Package order provides domain entities and business logic for order
// lifecycle management. It implements the Order aggregate root with a strict
// state machine and the derived order number.
//
// The package includes:
//   - Order: the aggregate root managing identity, details, and lifecycle
//   - State: a state machine enforcing a single linear forward progression
//     with a cancellation edge to Rejected
//   - FormatOrderNumber: pure derivation of the display order number from
//     the order identifier
//
// Key business rules:
//   - Orders start in the created state and advance one stage at a time:
//     created -> processing -> accepted -> conduct -> finalizing -> finished
//     -> shipped -> delivered
//   - Every non-terminal state may transition to rejected (cancellation)
//   - delivered and rejected are terminal; nothing leaves them
//   - Entering accepted, finished, delivered, or rejected selects a customer
//     notification template; other transitions notify nobody
//   - updatedAt strictly increases on every accepted transition
//
// The package follows Domain-Driven Design principles: rich domain behavior,
// encapsulation through private fields, and constructor validation.
package order
