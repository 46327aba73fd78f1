package articleapp

import (
	"github.com/studygate/studygate/business/domain/articlebus"
)

var orderByFields = map[string]string{
	"title":        articlebus.OrderByTitle,
	"slug":         articlebus.OrderBySlug,
	"date_created": articlebus.OrderByCreatedAt,
}
