package articledb

import (
	"bytes"
	"strings"

	"github.com/studygate/studygate/business/domain/articlebus"
)

func applyFilter(filter articlebus.QueryFilter, data map[string]any, buf *bytes.Buffer) {
	var wc []string

	if filter.Published != nil {
		data["published"] = *filter.Published
		wc = append(wc, "published = :published")
	}

	if len(wc) > 0 {
		buf.WriteString(" AND ")
		buf.WriteString(strings.Join(wc, " AND "))
	}
}
