package programapp

import (
	"github.com/studygate/studygate/business/domain/programbus"
)

var orderByFields = map[string]string{
	"name":         programbus.OrderByName,
	"slug":         programbus.OrderBySlug,
	"tuition_fee":  programbus.OrderByTuitionFee,
	"date_created": programbus.OrderByCreatedAt,
}
