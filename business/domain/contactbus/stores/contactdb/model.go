package contactdb

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/studygate/studygate/business/domain/contactbus"
	"github.com/studygate/studygate/business/types/phone"
	"github.com/studygate/studygate/business/types/weburl"
)

// jsonStrings maps a JSONB array column onto a string slice.
type jsonStrings []string

func (j jsonStrings) Value() (driver.Value, error) {
	if j == nil {
		return "[]", nil
	}

	d, err := json.Marshal(j)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}

	return string(d), nil
}

func (j *jsonStrings) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	case nil:
		*j = nil
		return nil
	default:
		return fmt.Errorf("unsupported scan type %T", src)
	}
}

type contactInfoDB struct {
	ClientID     uuid.UUID      `db:"client_id"`
	Phones       jsonStrings    `db:"phones"`
	Emails       jsonStrings    `db:"emails"`
	Address      sql.NullString `db:"address"`
	WorkingHours sql.NullString `db:"working_hours"`
	Whatsapp     sql.NullString `db:"whatsapp"`
	MapLink      sql.NullString `db:"map_link"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func toDBContactInfo(bus contactbus.ContactInfo) contactInfoDB {
	return contactInfoDB{
		ClientID: bus.ClientID,
		Phones:   jsonStrings(bus.Phones),
		Emails:   jsonStrings(bus.Emails),
		Address: sql.NullString{
			String: bus.Address,
			Valid:  bus.Address != "",
		},
		WorkingHours: sql.NullString{
			String: bus.WorkingHours,
			Valid:  bus.WorkingHours != "",
		},
		Whatsapp:  phone.ToSQLNullString(bus.Whatsapp),
		MapLink:   weburl.ToSQLNullString(bus.MapLink),
		CreatedAt: bus.CreatedAt.UTC(),
		UpdatedAt: bus.UpdatedAt.UTC(),
	}
}

func toBusContactInfo(db contactInfoDB) (contactbus.ContactInfo, error) {
	whatsapp, err := phone.ParseNull(db.Whatsapp.String)
	if err != nil {
		return contactbus.ContactInfo{}, fmt.Errorf("parse whatsapp: %w", err)
	}

	mapLink, err := weburl.ParseNull(db.MapLink.String)
	if err != nil {
		return contactbus.ContactInfo{}, fmt.Errorf("parse map link: %w", err)
	}

	bus := contactbus.ContactInfo{
		ClientID:     db.ClientID,
		Phones:       []string(db.Phones),
		Emails:       []string(db.Emails),
		Address:      db.Address.String,
		WorkingHours: db.WorkingHours.String,
		Whatsapp:     whatsapp,
		MapLink:      mapLink,
		CreatedAt:    db.CreatedAt.In(time.Local),
		UpdatedAt:    db.UpdatedAt.In(time.Local),
	}

	return bus, nil
}
