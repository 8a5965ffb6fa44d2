// Package services provides domain services that hold state spanning
// multiple aggregates in the retail order management system.
//
// The package includes:
//   - OrderManager: The identity-indexed registry of all known orders,
//     enforcing uniqueness and existence invariants and answering
//     aggregate queries (by customer, by status, revenue summation)
//   - ProductCatalog: The in-memory catalog orders resolve products from
//
// Both registries are constructed once per process and injected into their
// callers; access is guarded for concurrent use with snapshot-read
// iteration for registry-wide queries.
package services
