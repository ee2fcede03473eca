// Package order provides domain entities and business logic for customer order
// management in the printstream system. It implements the Order aggregate root
// with its owned order items.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, items, and lifecycle
//   - Item: A single product line owned by an Order, immutable once created
//   - Status: The order lifecycle states
//
// Key business rules:
//   - Orders must have a valid unique identifier, a customer name, and a
//     non-negative total
//   - Orders start in the Pending status
//   - Items are created together with their parent order and never independently
//   - Cancellation is a status value, not a deletion
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
