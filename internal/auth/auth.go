package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidToken = errors.New("invalid token")
)

// Role is a member's role within a company.
type Role string

const (
	RoleOwner    Role = "owner"
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// Viewer is the authenticated user making a request.
type Viewer struct {
	UserID    uuid.UUID
	CompanyID uuid.UUID
	Role      Role
}

// IsAdmin reports whether the viewer may change company-wide settings.
func (v Viewer) IsAdmin() bool {
	return v.Role == RoleOwner || v.Role == RoleAdmin
}

type claims struct {
	CompanyID uuid.UUID `json:"company_id"`
	Role      Role      `json:"role"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies HS256 access tokens.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (i *Issuer) Issue(v Viewer) (string, error) {
	now := i.now()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		CompanyID: v.CompanyID,
		Role:      v.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   v.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	})

	signed, err := t.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

func (i *Issuer) Parse(token string) (Viewer, error) {
	var c claims

	_, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Viewer{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	userID, err := uuid.Parse(c.Subject)
	if err != nil {
		return Viewer{}, fmt.Errorf("%w: subject: %w", ErrInvalidToken, err)
	}

	return Viewer{UserID: userID, CompanyID: c.CompanyID, Role: c.Role}, nil
}

type ctxKey struct{}

func WithViewer(ctx context.Context, v Viewer) context.Context {
	return context.WithValue(ctx, ctxKey{}, v)
}

func FromContext(ctx context.Context) (Viewer, bool) {
	v, ok := ctx.Value(ctxKey{}).(Viewer)
	return v, ok
}
