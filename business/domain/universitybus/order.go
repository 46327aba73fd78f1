package universitybus

import "github.com/studygate/studygate/business/sdk/order"

// DefaultOrderBy represents the default way we sort.
var DefaultOrderBy = order.NewBy(OrderByName, order.ASC)

// Set of fields that the results can be ordered by.
const (
	OrderByName      = "name"
	OrderBySlug      = "slug"
	OrderByRanking   = "ranking"
	OrderByCreatedAt = "created_at"
)
