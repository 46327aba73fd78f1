package consultationdb

import (
	"bytes"
	"strings"

	"github.com/studygate/studygate/business/domain/consultationbus"
)

func applyFilter(filter consultationbus.QueryFilter, data map[string]any, buf *bytes.Buffer) {
	var wc []string

	if filter.Status != nil {
		data["status"] = filter.Status.String()
		wc = append(wc, "status = :status")
	}

	if len(wc) > 0 {
		buf.WriteString(" AND ")
		buf.WriteString(strings.Join(wc, " AND "))
	}
}
