package shared

// ServiceSnapshot is the slice of a service a booking command needs.
type ServiceSnapshot struct {
	ID          int64
	Name        string
	Description string
	PriceCents  int64
	DurationMin int32
	IsActive    bool
}
