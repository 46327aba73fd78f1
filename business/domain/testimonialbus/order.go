package testimonialbus

import "github.com/studygate/studygate/business/sdk/order"

// DefaultOrderBy represents the default way we sort. Newest first.
var DefaultOrderBy = order.NewBy(OrderByCreatedAt, order.DESC)

// Set of fields that the results can be ordered by.
const (
	OrderByStudentName = "student_name"
	OrderByRating      = "rating"
	OrderByCreatedAt   = "created_at"
)
