package testimonialapp

import (
	"github.com/studygate/studygate/business/domain/testimonialbus"
)

var orderByFields = map[string]string{
	"student_name": testimonialbus.OrderByStudentName,
	"rating":       testimonialbus.OrderByRating,
	"date_created": testimonialbus.OrderByCreatedAt,
}
