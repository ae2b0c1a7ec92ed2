package constants

// Closed enum sets. DTO validate tags repeat the values as oneof literals
// (struct tags cannot reference constants); models store plain strings and
// defaults come from here.

// Client ↔ organization status; coach ↔ organization shares the values.
const (
	ClientOrgStatusActive   = "active"
	ClientOrgStatusInactive = "inactive"
	ClientOrgStatusPending  = "pending"
)

// Lead pipeline status
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusConverted = "converted"
	LeadStatusLost      = "lost"
)

// Membership invoice status
const (
	InvoiceStatusPending   = "pending"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusExpired   = "expired"
	InvoiceStatusCancelled = "cancelled"
)
