// Package services – AccountService
//
// This file implements AccountService, which owns registration, login, and
// token issuance. Passwords are stored as bcrypt hashes; sessions are
// stateless HS256 JWTs carrying the user ID as subject.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/eakarpinar/go-translation-backend/internal/domain"
	"github.com/eakarpinar/go-translation-backend/internal/repo"
)

// DefaultTokenTTL is the access-token lifetime applied when none is configured.
const DefaultTokenTTL = 24 * time.Hour

// AccountService handles user registration and authentication.
type AccountService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// JWTSecret signs and verifies access tokens (HS256).
	JWTSecret []byte
	// TokenTTL is the access-token lifetime; zero falls back to DefaultTokenTTL.
	TokenTTL time.Duration
	// BcryptCost overrides the hashing cost; zero uses bcrypt.DefaultCost.
	BcryptCost int
}

// Register creates a new account. Emails are normalized to lower case; a
// duplicate registration surfaces as ErrEmailTaken.
func (s *AccountService) Register(ctx context.Context, email, password, fullName, companyName string) (*domain.User, error) {
	tr := otel.Tracer("services/AccountService")
	ctx, span := tr.Start(ctx, "Register")
	defer span.End()

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	if _, err := repo.GetUserByEmail(ctx, s.DB, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cost := s.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := repo.CreateUser(ctx, s.DB, email, string(hash), strings.TrimSpace(fullName), strings.TrimSpace(companyName))
	if err != nil {
		// The unique index may still fire under concurrent registration.
		low := strings.ToLower(err.Error())
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(low, "unique constraint failed") {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	span.SetAttributes(attribute.String("user.id", u.ID))
	return u, nil
}

// Login verifies credentials and issues a signed access token. Unknown email
// and wrong password both return ErrInvalidCredentials.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	tr := otel.Tracer("services/AccountService")
	ctx, span := tr.Start(ctx, "Login")
	defer span.End()

	email = strings.ToLower(strings.TrimSpace(email))
	u, err := repo.GetUserByEmail(ctx, s.DB, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return "", nil, ErrAccountDisabled
	}

	token, err := s.issueToken(u)
	if err != nil {
		return "", nil, err
	}
	span.SetAttributes(attribute.String("user.id", u.ID))
	return token, u, nil
}

// GetProfile fetches the authenticated user's record (with subscription).
func (s *AccountService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	u, err := repo.GetUser(ctx, s.DB, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}

// VerifyToken parses and validates an access token, returning the subject
// user ID and role claim.
func (s *AccountService) VerifyToken(tokenString string) (userID string, role domain.Role, err error) {
	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.JWTSecret, nil
	})
	if err != nil || !tok.Valid {
		return "", "", ErrInvalidCredentials
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", "", ErrInvalidCredentials
	}
	r, _ := claims["role"].(string)
	return sub, domain.Role(r), nil
}

// issueToken signs an HS256 JWT for the user.
func (s *AccountService) issueToken(u *domain.User) (string, error) {
	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   u.ID,
		"email": u.Email,
		"role":  string(u.Role),
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.JWTSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
