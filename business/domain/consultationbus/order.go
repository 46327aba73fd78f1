package consultationbus

import "github.com/studygate/studygate/business/sdk/order"

// DefaultOrderBy represents the default way we sort. Newest lead first.
var DefaultOrderBy = order.NewBy(OrderByCreatedAt, order.DESC)

// Set of fields that the results can be ordered by.
const (
	OrderByFullName  = "full_name"
	OrderByStatus    = "status"
	OrderByCreatedAt = "created_at"
)
