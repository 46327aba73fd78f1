package leadapp

import (
	"net/http"

	"github.com/studygate/studygate/business/domain/consultationbus"
	"github.com/studygate/studygate/business/domain/messagebus"
)

type queryParams struct {
	Page    string
	Rows    string
	OrderBy string
	Status  string
}

func parseQueryParams(r *http.Request) queryParams {
	values := r.URL.Query()

	return queryParams{
		Page:    values.Get("page"),
		Rows:    values.Get("rows"),
		OrderBy: values.Get("orderBy"),
		Status:  values.Get("status"),
	}
}

func parseConsultationFilter(qp queryParams) (consultationbus.QueryFilter, error) {
	var filter consultationbus.QueryFilter

	if qp.Status != "" {
		status, err := consultationbus.ParseStatus(qp.Status)
		if err != nil {
			return consultationbus.QueryFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

func parseMessageFilter(qp queryParams) (messagebus.QueryFilter, error) {
	var filter messagebus.QueryFilter

	if qp.Status != "" {
		status, err := messagebus.ParseStatus(qp.Status)
		if err != nil {
			return messagebus.QueryFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}
