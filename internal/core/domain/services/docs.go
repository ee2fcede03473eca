// Package services provides domain services that implement business rules
// spanning the printstream domain model. It hosts logic that doesn't naturally
// belong to a single aggregate root.
//
// The package includes:
//   - SubcontractPolicy: The routing rule deciding whether a production item
//     goes to an external vendor or the in-house queue
package services
