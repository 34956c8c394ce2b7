package http

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

const adminSubject = "admin"

var (
	ErrInvalidCredentials = errors.New("invalid admin password")
	ErrInvalidToken       = errors.New("admin token is missing or invalid")
)

// AdminGate guards the admin routes with one shared password. A correct password buys a
// short-lived HS256 token that the admin routes require as a Bearer credential.
type AdminGate struct {
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
	clock        kernel.Clock
}

// Session is an issued admin token.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// NewAdminGate hashes password with bcrypt so the plain text is not kept in memory.
func NewAdminGate(password, secret string, ttl time.Duration, clock kernel.Clock) (*AdminGate, error) {
	var problems []error
	if password == "" {
		problems = append(problems, errs.NewValueIsRequiredError("adminPassword"))
	}
	if secret == "" {
		problems = append(problems, errs.NewValueIsRequiredError("adminTokenSecret"))
	}
	if ttl <= 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("adminTokenTTL", ttl, "1ns", "unbounded"))
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}

	return &AdminGate{
		passwordHash: hash,
		secret:       []byte(secret),
		ttl:          ttl,
		clock:        clock,
	}, nil
}

func (g *AdminGate) Login(password string) (Session, error) {
	if err := bcrypt.CompareHashAndPassword(g.passwordHash, []byte(password)); err != nil {
		return Session{}, ErrInvalidCredentials
	}

	now := g.clock.Now()
	expiresAt := now.Add(g.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   adminSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		ID:        kernel.NewUUID().String(),
	})

	signed, err := token.SignedString(g.secret)
	if err != nil {
		return Session{}, fmt.Errorf("sign admin token: %w", err)
	}

	return Session{Token: signed, ExpiresAt: expiresAt.Truncate(time.Second)}, nil
}

// Verify checks signature, algorithm, subject and expiry. Expiry is judged by the gate's
// clock.
func (g *AdminGate) Verify(tokenString string) error {
	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	_, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return g.secret, nil
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.Subject != adminSubject || !claims.VerifyExpiresAt(g.clock.Now(), true) {
		return ErrInvalidToken
	}

	return nil
}

// Middleware rejects requests without a valid "Authorization: Bearer" token.
func (g *AdminGate) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return ErrInvalidToken
			}

			if err := g.Verify(token); err != nil {
				return err
			}

			return next(c)
		}
	}
}
