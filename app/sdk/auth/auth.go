// Package auth provides authentication and authorization support on top of
// RS256 JWTs and the server side session store. The token proves who signed
// in; redis decides whether the sign in is still alive.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/studygate/studygate/business/domain/adminbus"
	"github.com/studygate/studygate/business/sdk/session"
	"github.com/studygate/studygate/business/types/role"
	"github.com/studygate/studygate/foundation/logger"
)

// Set of error variables for auth failures.
var (
	ErrForbidden      = errors.New("attempted action is not allowed")
	ErrKIDMissing     = errors.New("kid missing from token header")
	ErrKIDMalformed   = errors.New("kid in token header is malformed")
	ErrInvalidRole    = errors.New("token contains an invalid role")
	ErrSessionExpired = errors.New("session expired")
)

// Claims represents the authorization claims transmitted via a JWT.
type Claims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
	ClientID  string `json:"client_id,omitempty"`
	Role      string `json:"role"`
}

// KeyLookup declares a method set of behavior for looking up
// private and public keys for JWT use.
type KeyLookup interface {
	PrivateKey(kid string) (key string, err error)
	PublicKey(kid string) (key string, err error)
}

// Config represents information required to initialize auth.
type Config struct {
	Log       *logger.Logger
	AdminBus  *adminbus.Core
	Sessions  *session.Store
	KeyLookup KeyLookup
	ActiveKID string
	Issuer    string
}

// Auth is used to authenticate clients.
type Auth struct {
	log       *logger.Logger
	adminBus  *adminbus.Core
	sessions  *session.Store
	keyLookup KeyLookup
	activeKID string
	method    jwt.SigningMethod
	parser    *jwt.Parser
	issuer    string
}

// New creates an Auth to support authentication/authorization.
func New(cfg Config) *Auth {
	return &Auth{
		log:       cfg.Log,
		adminBus:  cfg.AdminBus,
		sessions:  cfg.Sessions,
		keyLookup: cfg.KeyLookup,
		activeKID: cfg.ActiveKID,
		method:    jwt.GetSigningMethod(jwt.SigningMethodRS256.Name),
		parser:    jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Name})),
		issuer:    cfg.Issuer,
	}
}

// Issuer provides the configured issuer used to authenticate tokens.
func (a *Auth) Issuer() string {
	return a.issuer
}

// Login authenticates the credentials, opens a server side session, and
// returns a signed token bound to that session.
func (a *Auth) Login(ctx context.Context, email mail.Address, password string) (adminbus.Admin, string, error) {
	adm, err := a.adminBus.Authenticate(ctx, email, password)
	if err != nil {
		return adminbus.Admin{}, "", fmt.Errorf("authenticate: %w", err)
	}

	sn := session.Session{
		ID:       uuid.New(),
		AdminID:  adm.ID,
		ClientID: adm.ClientID,
		IssuedAt: time.Now(),
	}

	if err := a.sessions.Create(ctx, sn); err != nil {
		return adminbus.Admin{}, "", fmt.Errorf("create session: %w", err)
	}

	token, err := a.GenerateToken(a.activeKID, adm, sn)
	if err != nil {
		return adminbus.Admin{}, "", fmt.Errorf("generate token: %w", err)
	}

	return adm, token, nil
}

// Logout tears the session down immediately. The token becomes useless even
// though its signature is still valid.
func (a *Auth) Logout(ctx context.Context, claims Claims) error {
	sessionID, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return fmt.Errorf("parsing session ID %q: %w", claims.SessionID, err)
	}

	if err := a.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// GenerateToken generates a signed JWT token string bound to the session.
// Token expiry matches the fixed session window.
func (a *Auth) GenerateToken(kid string, adm adminbus.Admin, sn session.Session) (string, error) {
	var cid string
	if adm.ClientID != uuid.Nil {
		cid = adm.ClientID.String()
	}

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adm.ID.String(),
			Issuer:    a.issuer,
			ExpiresAt: jwt.NewNumericDate(sn.IssuedAt.Add(session.Lifetime)),
			IssuedAt:  jwt.NewNumericDate(sn.IssuedAt),
		},
		SessionID: sn.ID.String(),
		ClientID:  cid,
		Role:      adm.Role().String(),
	}

	token := jwt.NewWithClaims(a.method, claims)
	token.Header["kid"] = kid

	privateKeyPEM, err := a.keyLookup.PrivateKey(kid)
	if err != nil {
		return "", fmt.Errorf("private key: %w", err)
	}

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return "", fmt.Errorf("parsing private key from PEM: %w", err)
	}

	str, err := token.SignedString(privateKey)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return str, nil
}

// Authenticate validates the bearer token signature and then consults the
// session store. A valid signature with a missing or aged out session still
// fails: the server side record is the authority.
func (a *Auth) Authenticate(ctx context.Context, bearerToken string) (Claims, error) {
	if !strings.HasPrefix(bearerToken, "Bearer ") {
		return Claims{}, errors.New("expected authorization header format: Bearer <token>")
	}

	jwtUnverified := bearerToken[7:]

	var claims Claims
	token, _, err := a.parser.ParseUnverified(jwtUnverified, &claims)
	if err != nil {
		return Claims{}, fmt.Errorf("error parsing token: %w", err)
	}

	kidRaw, exists := token.Header["kid"]
	if !exists {
		return Claims{}, ErrKIDMissing
	}

	kid, ok := kidRaw.(string)
	if !ok {
		return Claims{}, ErrKIDMalformed
	}

	pem, err := a.keyLookup.PublicKey(kid)
	if err != nil {
		return Claims{}, fmt.Errorf("fetching public key for kid %q: %w", kid, err)
	}

	if err := a.verifySignatureAndClaims(jwtUnverified, pem); err != nil {
		return Claims{}, fmt.Errorf("authentication failed: %w", err)
	}

	if _, err := role.Parse(claims.Role); err != nil {
		return Claims{}, ErrInvalidRole
	}

	if err := a.checkSession(ctx, claims); err != nil {
		return Claims{}, err
	}

	return claims, nil
}

// Authorize checks if the claims possess one of the required roles.
func (a *Auth) Authorize(ctx context.Context, claims Claims, allowedRoles ...role.Role) error {
	if len(allowedRoles) == 0 {
		return fmt.Errorf("%w: no roles authorized for this endpoint", ErrForbidden)
	}

	for _, r := range allowedRoles {
		if claims.Role == r.String() {
			return nil
		}
	}

	return fmt.Errorf("%w: role %q is not in the allowed list %v", ErrForbidden, claims.Role, allowedRoles)
}

// checkSession confirms the server side session behind the token is still
// alive.
func (a *Auth) checkSession(ctx context.Context, claims Claims) error {
	sessionID, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return fmt.Errorf("parsing session ID %q from claims: %w", claims.SessionID, err)
	}

	if _, err := a.sessions.QueryByID(ctx, sessionID); err != nil {
		if errors.Is(err, session.ErrNotFound) || errors.Is(err, session.ErrExpired) {
			return ErrSessionExpired
		}
		return fmt.Errorf("query session: %w", err)
	}

	return nil
}

// verifySignatureAndClaims parses the token with the public key, validates
// the signature, and checks the issuer claim.
func (a *Auth) verifySignatureAndClaims(tokenStr, pemStr string) error {
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pemStr))
	if err != nil {
		return fmt.Errorf("parsing public key: %w", err)
	}

	var claims Claims
	token, err := a.parser.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return publicKey, nil
	})

	if err != nil {
		return fmt.Errorf("validating token signature: %w", err)
	}

	if !token.Valid {
		return errors.New("token is invalid")
	}

	if claims.Issuer != a.issuer {
		return fmt.Errorf("invalid issuer: expected %q, got %q", a.issuer, claims.Issuer)
	}

	return nil
}

// ExtractDomain strips the port from a request host so the tenant lookup
// always sees the bare domain.
func ExtractDomain(host string) string {
	if host, _, err := net.SplitHostPort(host); err == nil {
		return host
	}
	return host
}
