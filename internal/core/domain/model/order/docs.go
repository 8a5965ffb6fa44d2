// Package order provides domain entities and business logic for order
// lifecycle management in the retail backend. It implements the Order
// aggregate root with item mutation, discount application, total
// recomputation, and fulfillment state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, line items,
//     money fields, and lifecycle
//   - Status: A state machine that enforces valid fulfillment transitions
//   - LineItem: A priced quantity of one product, snapshotted at add time
//   - Snapshot: A read-only projection for external consumers
//
// Key business rules:
//   - The order total is always derivable from items, tax, shipping cost,
//     and the applied discount; it is recomputed after every money mutation
//   - Status follows Pending -> Processing -> Shipped -> Delivered, with
//     Cancelled reachable from Pending and Processing
//   - Discount application replaces any previously applied discount and is
//     best-effort: bad codes yield a zero amount, never a fatal error
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
