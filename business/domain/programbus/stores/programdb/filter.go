package programdb

import (
	"bytes"
	"strings"

	"github.com/studygate/studygate/business/domain/programbus"
)

func applyFilter(filter programbus.QueryFilter, data map[string]any, buf *bytes.Buffer) {
	var wc []string

	if filter.UniversityID != nil {
		data["university_id"] = filter.UniversityID.String()
		wc = append(wc, "university_id = :university_id")
	}

	if filter.CountryID != nil {
		data["country_id"] = filter.CountryID.String()
		wc = append(wc, "country_id = :country_id")
	}

	if len(wc) > 0 {
		buf.WriteString(" AND ")
		buf.WriteString(strings.Join(wc, " AND "))
	}
}
