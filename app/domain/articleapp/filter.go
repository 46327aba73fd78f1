package articleapp

import (
	"net/http"
	"strconv"

	"github.com/studygate/studygate/business/domain/articlebus"
)

type queryParams struct {
	Page      string
	Rows      string
	OrderBy   string
	Published string
}

func parseQueryParams(r *http.Request) queryParams {
	values := r.URL.Query()

	return queryParams{
		Page:      values.Get("page"),
		Rows:      values.Get("rows"),
		OrderBy:   values.Get("orderBy"),
		Published: values.Get("published"),
	}
}

func parseFilter(qp queryParams) (articlebus.QueryFilter, error) {
	var filter articlebus.QueryFilter

	if qp.Published != "" {
		published, err := strconv.ParseBool(qp.Published)
		if err != nil {
			return articlebus.QueryFilter{}, err
		}
		filter.Published = &published
	}

	return filter, nil
}
