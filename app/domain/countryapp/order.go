package countryapp

import (
	"github.com/studygate/studygate/business/domain/countrybus"
)

var orderByFields = map[string]string{
	"name":         countrybus.OrderByName,
	"slug":         countrybus.OrderBySlug,
	"date_created": countrybus.OrderByCreatedAt,
}
