package siteapp

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/studygate/studygate/business/domain/programbus"
	"github.com/studygate/studygate/business/domain/universitybus"
)

type queryParams struct {
	Page         string
	Rows         string
	CountryID    string
	UniversityID string
}

func parseQueryParams(r *http.Request) queryParams {
	values := r.URL.Query()

	return queryParams{
		Page:         values.Get("page"),
		Rows:         values.Get("rows"),
		CountryID:    values.Get("country_id"),
		UniversityID: values.Get("university_id"),
	}
}

func parseUniversityFilter(qp queryParams) (universitybus.QueryFilter, error) {
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

func parseProgramFilter(qp queryParams) (programbus.QueryFilter, error) {
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
