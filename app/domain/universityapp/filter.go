package universityapp

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/studygate/studygate/business/domain/universitybus"
)

type queryParams struct {
	Page      string
	Rows      string
	OrderBy   string
	CountryID string
}

func parseQueryParams(r *http.Request) queryParams {
	values := r.URL.Query()

	return queryParams{
		Page:      values.Get("page"),
		Rows:      values.Get("rows"),
		OrderBy:   values.Get("orderBy"),
		CountryID: values.Get("country_id"),
	}
}

func parseFilter(qp queryParams) (universitybus.QueryFilter, error) {
	var filter universitybus.QueryFilter

	if qp.CountryID != "" {
		id, err := uuid.Parse(qp.CountryID)
		if err != nil {
			return universitybus.QueryFilter{}, err
		}
		filter.CountryID = &id
	}

	return filter, nil
}
