package dashboardapp

import (
	"encoding/json"

	"github.com/studygate/studygate/business/domain/dashboardbus"
)

// Stats represents the dashboard counters for a tenant.
type Stats struct {
	Countries            int `json:"countries"`
	Universities         int `json:"universities"`
	Programs             int `json:"programs"`
	Articles             int `json:"articles"`
	Testimonials         int `json:"testimonials"`
	Consultations        int `json:"consultations"`
	PendingConsultations int `json:"pendingConsultations"`
	Messages             int `json:"messages"`
	UnreadMessages       int `json:"unreadMessages"`
}

// Encode implements the web.Encoder interface.
func (s Stats) Encode() ([]byte, string, error) {
	data, err := json.Marshal(s)
	return data, "application/json", err
}

func toAppStats(bus dashboardbus.Stats) Stats {
	return Stats{
		Countries:            bus.Countries,
		Universities:         bus.Universities,
		Programs:             bus.Programs,
		Articles:             bus.Articles,
		Testimonials:         bus.Testimonials,
		Consultations:        bus.Consultations,
		PendingConsultations: bus.PendingConsultations,
		Messages:             bus.Messages,
		UnreadMessages:       bus.UnreadMessages,
	}
}
