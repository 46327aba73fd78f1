package universitydb

import (
	"bytes"
	"strings"

	"github.com/studygate/studygate/business/domain/universitybus"
)

func applyFilter(filter universitybus.QueryFilter, data map[string]any, buf *bytes.Buffer) {
	var wc []string

	if filter.CountryID != nil {
		data["country_id"] = filter.CountryID.String()
		wc = append(wc, "country_id = :country_id")
	}

	if len(wc) > 0 {
		buf.WriteString(" AND ")
		buf.WriteString(strings.Join(wc, " AND "))
	}
}
