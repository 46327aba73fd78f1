package consultationbus

// QueryFilter holds the available fields a query can be filtered on.
type QueryFilter struct {
	Status *Status
}
