package clientapp

import (
	"github.com/studygate/studygate/business/domain/clientbus"
)

var orderByFields = map[string]string{
	"name":         clientbus.OrderByName,
	"domain":       clientbus.OrderByDomain,
	"date_created": clientbus.OrderByCreatedAt,
}
