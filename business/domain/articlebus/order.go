package articlebus

import "github.com/studygate/studygate/business/sdk/order"

// DefaultOrderBy represents the default way we sort. Newest first.
var DefaultOrderBy = order.NewBy(OrderByCreatedAt, order.DESC)

// Set of fields that the results can be ordered by.
const (
	OrderByTitle     = "title"
	OrderBySlug      = "slug"
	OrderByCreatedAt = "created_at"
)
