package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/rafaeldl/praticOSopen-sub000/internal/domain/entities"
	"github.com/rafaeldl/praticOSopen-sub000/internal/usecase/interfaces"
)

const accessTokenTTL = time.Hour

var (
	ErrUnauthorized      = errors.New("missing credential")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrTokenExpired      = errors.New("credential expired")
)

// Credentials is the raw credential material extracted from one request.
// Exactly one channel is expected to be populated; the resolver tries them in
// a fixed order and the first present one wins.
type Credentials struct {
	APIKey     string
	APISecret  string
	Bearer     string
	BotPhone   string
	ShareToken string
}

func (c Credentials) empty() bool {
	return c.APIKey == "" && c.Bearer == "" && c.BotPhone == "" && c.ShareToken == ""
}

// IAuthResolver turns any of the four credential channels into one uniform
// AuthContext. Downstream code branches on capabilities, never on the
// channel. The three failure sentinels all surface as 401 externally but stay
// distinct for observability.

type IAuthResolver interface {
	Resolve(ctx context.Context, creds Credentials) (entities.AuthContext, error)
	IssueAccessToken(ctx context.Context, key, secret string) (token string, expiresAt time.Time, err error)
}

// accessClaims is the bearer JWT payload. Bearers are minted from an API
// key + secret exchange and inherit that key's tenant and permissions.
type accessClaims struct {
	TenantID string `json:"tenant_id"`
	jwt.RegisteredClaims
}

type AuthResolver struct {
	repo      interfaces.IAuthRepository
	shares    IShareTokenUseCase
	clock     interfaces.Clock
	jwtSecret []byte
}

var _ IAuthResolver = (*AuthResolver)(nil)

func NewAuthResolver(repo interfaces.IAuthRepository, shares IShareTokenUseCase, clock interfaces.Clock, jwtSecret []byte) *AuthResolver {
	return &AuthResolver{repo: repo, shares: shares, clock: clock, jwtSecret: jwtSecret}
}

func (r *AuthResolver) Resolve(ctx context.Context, creds Credentials) (entities.AuthContext, error) {
	switch {
	case creds.APIKey != "":
		return r.resolveAPIKey(ctx, creds.APIKey, creds.APISecret)
	case creds.Bearer != "":
		return r.resolveBearer(creds.Bearer)
	case creds.BotPhone != "":
		return r.resolveBotLink(ctx, creds.BotPhone)
	case creds.ShareToken != "":
		return r.resolveShareToken(ctx, creds.ShareToken)
	default:
		return entities.AuthContext{}, ErrUnauthorized
	}
}

func (r *AuthResolver) resolveAPIKey(ctx context.Context, key, secret string) (entities.AuthContext, error) {
	k, err := r.repo.GetAPIKey(ctx, strings.TrimSpace(key))
	if err != nil {
		return entities.AuthContext{}, err
	}
	if k.Key == "" || k.Secret != secret {
		return entities.AuthContext{}, ErrInvalidCredential
	}
	if k.Expired(r.clock.Now()) {
		return entities.AuthContext{}, ErrTokenExpired
	}
	return entities.AuthContext{Principal: entities.Principal{
		Kind:         entities.CredentialAPIKey,
		TenantID:     k.TenantID,
		Capabilities: entities.AllCapabilities(),
	}}, nil
}

func (r *AuthResolver) resolveBearer(raw string) (entities.AuthContext, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	var claims accessClaims
	token, err := parser.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		return r.jwtSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return entities.AuthContext{}, ErrTokenExpired
		}
		return entities.AuthContext{}, ErrInvalidCredential
	}
	if !token.Valid || strings.TrimSpace(claims.TenantID) == "" {
		return entities.AuthContext{}, ErrInvalidCredential
	}
	return entities.AuthContext{Principal: entities.Principal{
		Kind:         entities.CredentialBearer,
		TenantID:     claims.TenantID,
		Capabilities: entities.AllCapabilities(),
	}}, nil
}

func (r *AuthResolver) resolveBotLink(ctx context.Context, phone string) (entities.AuthContext, error) {
	link, err := r.repo.GetBotLink(ctx, strings.TrimSpace(phone))
	if err != nil {
		return entities.AuthContext{}, err
	}
	if link.Phone == "" {
		return entities.AuthContext{}, ErrInvalidCredential
	}

	user, err := r.repo.GetUser(ctx, link.TenantID, link.UserID)
	if err != nil {
		return entities.AuthContext{}, err
	}
	if user.ID == "" {
		log.Printf("[auth][usecase] bot link points at missing user tenant=%s user=%s", link.TenantID, link.UserID)
		return entities.AuthContext{}, ErrInvalidCredential
	}

	return entities.AuthContext{Principal: entities.Principal{
		Kind:         entities.CredentialBotLink,
		TenantID:     user.TenantID,
		UserID:       user.ID,
		Role:         user.Role,
		Capabilities: entities.RoleCapabilities(user.Role),
	}}, nil
}

// resolveShareToken yields a principal scoped to exactly the token's
// permission subset and one order, with no broader tenant access. The view
// counter bump is fired in the background and can never fail the request.
func (r *AuthResolver) resolveShareToken(ctx context.Context, token string) (entities.AuthContext, error) {
	t, err := r.shares.Validate(ctx, token)
	if err != nil {
		return entities.AuthContext{}, err
	}
	r.shares.RecordView(ctx, t.Token)

	return entities.AuthContext{
		Principal: entities.Principal{
			Kind:             entities.CredentialShareToken,
			TenantID:         t.TenantID,
			OrderID:          t.OrderID,
			SharePermissions: t.Permissions,
		},
		ShareToken: &t,
	}, nil
}

// IssueAccessToken is the API key + secret exchange behind POST /auth/token.
func (r *AuthResolver) IssueAccessToken(ctx context.Context, key, secret string) (string, time.Time, error) {
	k, err := r.repo.GetAPIKey(ctx, strings.TrimSpace(key))
	if err != nil {
		return "", time.Time{}, err
	}
	if k.Key == "" || k.Secret != secret {
		return "", time.Time{}, ErrInvalidCredential
	}
	now := r.clock.Now()
	if k.Expired(now) {
		return "", time.Time{}, ErrTokenExpired
	}

	expiresAt := now.Add(accessTokenTTL)
	claims := &accessClaims{
		TenantID: k.TenantID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   k.Key,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(r.jwtSecret)
	if err != nil {
		return "", time.Time{}, err
	}
	log.Printf("[auth][usecase] access token issued tenant=%s key=%s", k.TenantID, k.Key)
	return signed, expiresAt, nil
}
