package services

// SubcontractPolicy is a domain service that decides whether a production item
// must be routed to an external vendor instead of the in-house queue.
//
// The decision is made once, at order intake, and stamped onto the work order
// as an immutable flag. It is never recomputed, so later policy changes do not
// reroute items already in production.
//
// Current rule: XXL garments and red garments are subcontracted; everything
// else is produced in house. This is a placeholder policy, not a general
// eligibility engine.
//
// Example usage:
//
//	policy := services.NewSubcontractPolicy()
//	if policy.NeedsSubcontracting("Red", "M") {
//	    // route to external vendor
//	}
type SubcontractPolicy struct{}

// NewSubcontractPolicy creates a new SubcontractPolicy instance.
func NewSubcontractPolicy() SubcontractPolicy {
	return SubcontractPolicy{}
}

// NeedsSubcontracting reports whether an item with the given color and size
// must be subcontracted. Pure function: no side effects, total over its
// inputs, never errors.
func (p SubcontractPolicy) NeedsSubcontracting(color, size string) bool {
	return size == "XXL" || color == "Red"
}
