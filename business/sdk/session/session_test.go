package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExpired(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		issuedAt time.Time
		expired  bool
	}{
		{"fresh", now, false},
		{"mid window", now.Add(-Lifetime / 2), false},
		{"exactly at window", now.Add(-Lifetime), false},
		{"just past window", now.Add(-Lifetime - time.Second), true},
		{"long dead", now.Add(-24 * time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sn := Session{IssuedAt: tt.issuedAt}
			assert.Equal(t, tt.expired, sn.Expired(now))
		})
	}
}
