package articlebus

// QueryFilter holds the available fields a query can be filtered on. The
// public site only lists published articles; the admin screen lists all.
type QueryFilter struct {
	Published *bool
}
