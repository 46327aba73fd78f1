package leadapp

import (
	"github.com/studygate/studygate/business/domain/consultationbus"
	"github.com/studygate/studygate/business/domain/messagebus"
)

var consultationOrderByFields = map[string]string{
	"full_name":    consultationbus.OrderByFullName,
	"status":       consultationbus.OrderByStatus,
	"date_created": consultationbus.OrderByCreatedAt,
}

var messageOrderByFields = map[string]string{
	"name":         messagebus.OrderByName,
	"status":       messagebus.OrderByStatus,
	"date_created": messagebus.OrderByCreatedAt,
}
