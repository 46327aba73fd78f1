package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"io"
	"net/mail"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studygate/studygate/business/domain/adminbus"
	"github.com/studygate/studygate/business/sdk/session"
	"github.com/studygate/studygate/business/types/role"
	"github.com/studygate/studygate/foundation/keystore"
	"github.com/studygate/studygate/foundation/logger"
)

const testKID = "test-kid"

func newTestAuth(t *testing.T) (*Auth, *keystore.KeyStore) {
	t.Helper()

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	block := pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(privateKey),
	}
	privatePEM := string(pem.EncodeToMemory(&block))

	ks := keystore.New()
	require.NoError(t, ks.Add(privatePEM, testKID))

	a := New(Config{
		Log:       logger.New(io.Discard, logger.LevelInfo, "TEST", nil),
		KeyLookup: ks,
		ActiveKID: testKID,
		Issuer:    "https://test.example.com/auth/",
	})

	return a, ks
}

func TestGenerateToken_Claims(t *testing.T) {
	a, ks := newTestAuth(t)

	adm := adminbus.Admin{
		ID:       uuid.New(),
		ClientID: uuid.New(),
		Email:    mail.Address{Address: "admin@acme.com"},
	}

	sn := session.Session{
		ID:       uuid.New(),
		AdminID:  adm.ID,
		ClientID: adm.ClientID,
		IssuedAt: time.Now(),
	}

	tokenStr, err := a.GenerateToken(testKID, adm, sn)
	require.NoError(t, err)

	pubPEM, err := ks.PublicKey(testKID)
	require.NoError(t, err)

	publicKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pubPEM))
	require.NoError(t, err)

	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		return publicKey, nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	assert.Equal(t, adm.ID.String(), claims.Subject)
	assert.Equal(t, sn.ID.String(), claims.SessionID)
	assert.Equal(t, adm.ClientID.String(), claims.ClientID)
	assert.Equal(t, role.Admin.String(), claims.Role)
	assert.Equal(t, a.Issuer(), claims.Issuer)

	// Token expiry tracks the fixed session window.
	wantExp := sn.IssuedAt.Add(session.Lifetime)
	assert.WithinDuration(t, wantExp, claims.ExpiresAt.Time, time.Second)
}

func TestGenerateToken_OwnerOmitsClientID(t *testing.T) {
	a, _ := newTestAuth(t)

	adm := adminbus.Admin{
		ID:    uuid.New(),
		Email: mail.Address{Address: "owner@platform.com"},
	}

	sn := session.Session{
		ID:       uuid.New(),
		AdminID:  adm.ID,
		IssuedAt: time.Now(),
	}

	tokenStr, err := a.GenerateToken(testKID, adm, sn)
	require.NoError(t, err)

	var claims Claims
	_, _, err = jwt.NewParser().ParseUnverified(tokenStr, &claims)
	require.NoError(t, err)

	assert.Empty(t, claims.ClientID)
	assert.Equal(t, role.Owner.String(), claims.Role)
}

func TestAuthorize(t *testing.T) {
	a, _ := newTestAuth(t)
	ctx := context.Background()

	claims := Claims{Role: role.Admin.String()}

	assert.NoError(t, a.Authorize(ctx, claims, role.Admin))
	assert.NoError(t, a.Authorize(ctx, claims, role.Owner, role.Admin))

	err := a.Authorize(ctx, claims, role.Owner)
	assert.ErrorIs(t, err, ErrForbidden)

	err = a.Authorize(ctx, claims)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestExtractDomain(t *testing.T) {
	assert.Equal(t, "acme-abroad.com", ExtractDomain("acme-abroad.com:3000"))
	assert.Equal(t, "acme-abroad.com", ExtractDomain("acme-abroad.com"))
	assert.Equal(t, "localhost", ExtractDomain("localhost:8080"))
}
