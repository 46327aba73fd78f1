package messagebus

import "github.com/studygate/studygate/business/sdk/order"

// DefaultOrderBy represents the default way we sort. Newest message first.
var DefaultOrderBy = order.NewBy(OrderByCreatedAt, order.DESC)

// Set of fields that the results can be ordered by.
const (
	OrderByName      = "name"
	OrderByStatus    = "status"
	OrderByCreatedAt = "created_at"
)
