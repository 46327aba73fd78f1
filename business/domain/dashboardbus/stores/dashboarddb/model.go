package dashboarddb

import "github.com/studygate/studygate/business/domain/dashboardbus"

type statsDB struct {
	Countries            int `db:"countries"`
	Universities         int `db:"universities"`
	Programs             int `db:"programs"`
	Articles             int `db:"articles"`
	Testimonials         int `db:"testimonials"`
	Consultations        int `db:"consultations"`
	PendingConsultations int `db:"pending_consultations"`
	Messages             int `db:"messages"`
	UnreadMessages       int `db:"unread_messages"`
}

func toBusStats(db statsDB) dashboardbus.Stats {
	return dashboardbus.Stats{
		Countries:            db.Countries,
		Universities:         db.Universities,
		Programs:             db.Programs,
		Articles:             db.Articles,
		Testimonials:         db.Testimonials,
		Consultations:        db.Consultations,
		PendingConsultations: db.PendingConsultations,
		Messages:             db.Messages,
		UnreadMessages:       db.UnreadMessages,
	}
}
