package leadapp

import (
	"bytes"
	"net/mail"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studygate/studygate/business/domain/consultationbus"
	"github.com/studygate/studygate/business/types/name"
	"github.com/studygate/studygate/business/types/phone"
	"github.com/xuri/excelize/v2"
)

func TestBuildConsultationWorkbook(t *testing.T) {
	email := mail.Address{Address: "sara@example.com"}

	cons := []consultationbus.Consultation{
		{
			FullName:    name.MustParse("Sara Ahmed"),
			Phone:       phone.MustParse("+971501234567"),
			Email:       &email,
			Destination: "Canada",
			Message:     "Interested in MBA programs",
			Status:      consultationbus.StatusPending,
			CreatedAt:   time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			FullName: name.MustParse("Omar Khalil"),
			Phone:    phone.MustParse("+971509876543"),
			Status:   consultationbus.StatusContacted,
		},
	}

	wb, err := buildConsultationWorkbook(cons)
	require.NoError(t, err)

	data, mime, err := wb.Encode()
	require.NoError(t, err)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", mime)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Consultations")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, exportHeaders, rows[0])
	assert.Equal(t, "Sara Ahmed", rows[1][0])
	assert.Equal(t, "sara@example.com", rows[1][2])
	assert.Equal(t, "PENDING", rows[1][5])
	assert.Equal(t, "Omar Khalil", rows[2][0])
}

func TestBuildConsultationWorkbook_Empty(t *testing.T) {
	wb, err := buildConsultationWorkbook(nil)
	require.NoError(t, err)

	data, _, err := wb.Encode()
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Consultations")
	require.NoError(t, err)
	require.Len(t, rows, 1, "only the header row")
}
