package main

import (
	"io"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studygate/studygate/foundation/logger"
)

func TestParseNewTenant(t *testing.T) {
	nt, err := parseNewTenant(
		"Acme Abroad",
		"acme-abroad.com",
		"Jamie Doe",
		"owner@acme-abroad.com",
		"s3cret!",
		"",
		"#1d4ed8",
		"#0f172a",
		"#f59e0b",
	)
	require.NoError(t, err)

	assert.Equal(t, "Acme Abroad", nt.SiteName.String())
	assert.Equal(t, "acme-abroad.com", nt.Domain)
	assert.Equal(t, "owner@acme-abroad.com", nt.Email.Address)
	assert.Equal(t, "#1d4ed8", nt.Theme.Primary.String())
	assert.Equal(t, "#f59e0b", nt.Theme.Accent.String())
}

func TestParseNewTenant_BadColor(t *testing.T) {
	_, err := parseNewTenant(
		"Acme Abroad",
		"acme-abroad.com",
		"",
		"owner@acme-abroad.com",
		"s3cret!",
		"",
		"blue",
		"#0f172a",
		"#f59e0b",
	)
	assert.Error(t, err)
}

func TestProvisionCmd_RequiresFlags(t *testing.T) {
	log := logger.New(io.Discard, logger.LevelInfo, "TEST", nil)

	openDB := func() (*sqlx.DB, error) {
		t.Fatal("openDB must not be called when required flags are missing")
		return nil, nil
	}

	cmd := provisionCmd(log, openDB, Config{})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}
