package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "lexiq"

var (
	ErrInvalidRequest     = errors.New("invalid auth request")
	ErrInvalidCredentials = errors.New("invalid session token")
)

// Principal is the authenticated caller attached to a request.
type Principal struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
}

type IssueRequest struct {
	UserID string
	Email  string
	TTL    time.Duration
}

type IssueResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

type VerifyRequest struct {
	Token string
}

type IssueUseCase struct {
	Secret []byte
	Now    func() time.Time
}

type VerifyUseCase struct {
	Secret []byte
	Now    func() time.Time
}

type claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

func (u IssueUseCase) Execute(_ context.Context, req IssueRequest) (IssueResponse, error) {
	req.UserID = strings.TrimSpace(req.UserID)
	if req.UserID == "" || len(u.Secret) == 0 {
		return IssueResponse{}, ErrInvalidRequest
	}
	if req.TTL <= 0 {
		req.TTL = time.Hour
	}
	now := nowFn(u.Now)()
	exp := now.Add(req.TTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   req.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		Email: strings.TrimSpace(req.Email),
	})
	signed, err := token.SignedString(u.Secret)
	if err != nil {
		return IssueResponse{}, err
	}
	return IssueResponse{Token: signed, ExpiresAt: exp.UTC().Format(time.RFC3339)}, nil
}

func (u VerifyUseCase) Execute(_ context.Context, req VerifyRequest) (Principal, error) {
	token := strings.TrimSpace(req.Token)
	if token == "" || len(u.Secret) == 0 {
		return Principal{}, ErrInvalidRequest
	}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(nowFn(u.Now)),
	)
	c := &claims{}
	parsed, err := parser.ParseWithClaims(token, c, func(*jwt.Token) (any, error) {
		return u.Secret, nil
	})
	if err != nil || !parsed.Valid || c.Subject == "" {
		return Principal{}, ErrInvalidCredentials
	}
	return Principal{UserID: c.Subject, Email: c.Email}, nil
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok && p.UserID != ""
}

// UserID returns the caller id or "" for anonymous requests.
func UserID(ctx context.Context) string {
	p, _ := PrincipalFromContext(ctx)
	return p.UserID
}

func nowFn(fn func() time.Time) func() time.Time {
	if fn == nil {
		return time.Now
	}
	return fn
}
