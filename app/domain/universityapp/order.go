package universityapp

import (
	"github.com/studygate/studygate/business/domain/universitybus"
)

var orderByFields = map[string]string{
	"name":         universitybus.OrderByName,
	"slug":         universitybus.OrderBySlug,
	"ranking":      universitybus.OrderByRanking,
	"date_created": universitybus.OrderByCreatedAt,
}
