package programapp

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/studygate/studygate/business/domain/programbus"
)

type queryParams struct {
	Page         string
	Rows         string
	OrderBy      string
	UniversityID string
	CountryID    string
}

func parseQueryParams(r *http.Request) queryParams {
	values := r.URL.Query()

	return queryParams{
		Page:         values.Get("page"),
		Rows:         values.Get("rows"),
		OrderBy:      values.Get("orderBy"),
		UniversityID: values.Get("university_id"),
		CountryID:    values.Get("country_id"),
	}
}

func parseFilter(qp queryParams) (programbus.QueryFilter, error) {
	var filter programbus.QueryFilter

	if qp.UniversityID != "" {
		id, err := uuid.Parse(qp.UniversityID)
		if err != nil {
			return programbus.QueryFilter{}, err
		}
		filter.UniversityID = &id
	}

	if qp.CountryID != "" {
		id, err := uuid.Parse(qp.CountryID)
		if err != nil {
			return programbus.QueryFilter{}, err
		}
		filter.CountryID = &id
	}

	return filter, nil
}
