// Package kernel provides core domain primitives shared across the retail
// order management domain model.
//
// The package includes:
//   - Address: An immutable value object for shipping destinations with
//     field-presence validation and a default country
//
// These primitives enforce domain invariants at construction time, ensuring
// that domain objects are always in a valid state. They are immutable and
// safe for concurrent use.
package kernel
