package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/eakarpinar/go-translation-backend/internal/domain"
)

func newAccountService(t *testing.T) *AccountService {
	t.Helper()
	return &AccountService{
		DB:         newTestDB(t),
		JWTSecret:  []byte("test-secret"),
		TokenTTL:   time.Hour,
		BcryptCost: bcrypt.MinCost, // keep hashing fast in tests
	}
}

func TestRegister_NormalizesAndHashes(t *testing.T) {
	svc := newAccountService(t)

	u, err := svc.Register(context.Background(), "  Ayşe@Example.COM ", "s3cret", " Ayşe Kaya ", " Acme ")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.Email != "ayşe@example.com" {
		t.Fatalf("email not normalized: %q", u.Email)
	}
	if u.FullName != "Ayşe Kaya" || u.CompanyName != "Acme" {
		t.Fatalf("profile = %+v", u)
	}
	if u.Role != domain.RoleUser || !u.IsActive {
		t.Fatalf("defaults = %+v", u)
	}
	if u.PasswordHash == "s3cret" || u.PasswordHash == "" {
		t.Fatal("password must be stored hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestRegister_Validation(t *testing.T) {
	svc := newAccountService(t)
	if _, err := svc.Register(context.Background(), "  ", "pw", "", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("empty email: err = %v", err)
	}
	if _, err := svc.Register(context.Background(), "a@b.com", "", "", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("empty password: err = %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newAccountService(t)
	if _, err := svc.Register(context.Background(), "dup@example.com", "pw", "", ""); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	// Case-insensitive duplicate.
	if _, err := svc.Register(context.Background(), "DUP@example.com", "pw2", "", ""); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestLogin(t *testing.T) {
	svc := newAccountService(t)
	reg, err := svc.Register(context.Background(), "login@example.com", "pw", "", "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	t.Run("success issues verifiable token", func(t *testing.T) {
		token, u, err := svc.Login(context.Background(), "LOGIN@example.com", "pw")
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if u.ID != reg.ID {
			t.Fatalf("user = %+v", u)
		}
		uid, role, err := svc.VerifyToken(token)
		if err != nil || uid != reg.ID || role != domain.RoleUser {
			t.Fatalf("VerifyToken = (%q, %q, %v)", uid, role, err)
		}
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		_, _, err1 := svc.Login(context.Background(), "login@example.com", "nope")
		_, _, err2 := svc.Login(context.Background(), "ghost@example.com", "pw")
		if !errors.Is(err1, ErrInvalidCredentials) || !errors.Is(err2, ErrInvalidCredentials) {
			t.Fatalf("errs = %v, %v", err1, err2)
		}
	})

	t.Run("disabled account", func(t *testing.T) {
		if err := svc.DB.Model(&domain.User{}).Where("id = ?", reg.ID).
			Update("is_active", false).Error; err != nil {
			t.Fatalf("disable: %v", err)
		}
		if _, _, err := svc.Login(context.Background(), "login@example.com", "pw"); !errors.Is(err, ErrAccountDisabled) {
			t.Fatalf("err = %v, want ErrAccountDisabled", err)
		}
	})
}

func TestGetProfile(t *testing.T) {
	svc := newAccountService(t)
	reg, err := svc.Register(context.Background(), "profile@example.com", "pw", "", "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	u, err := svc.GetProfile(context.Background(), reg.ID)
	if err != nil || u.Email != "profile@example.com" {
		t.Fatalf("GetProfile = (%+v, %v)", u, err)
	}
	if _, err := svc.GetProfile(context.Background(), "00000000-0000-0000-0000-000000000000"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("unknown id err = %v, want ErrUserNotFound", err)
	}
}

func TestVerifyToken_Rejections(t *testing.T) {
	svc := newAccountService(t)

	sign := func(method jwt.SigningMethod, claims jwt.MapClaims, key any) string {
		t.Helper()
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		return s
	}
	now := time.Now().UTC()
	base := jwt.MapClaims{"sub": "u1", "iat": now.Unix(), "exp": now.Add(time.Hour).Unix()}

	t.Run("garbage", func(t *testing.T) {
		if _, _, err := svc.VerifyToken("not.a.jwt"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("err = %v", err)
		}
	})
	t.Run("wrong secret", func(t *testing.T) {
		tok := sign(jwt.SigningMethodHS256, base, []byte("other-secret"))
		if _, _, err := svc.VerifyToken(tok); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("err = %v", err)
		}
	})
	t.Run("expired", func(t *testing.T) {
		claims := jwt.MapClaims{"sub": "u1", "iat": now.Add(-2 * time.Hour).Unix(), "exp": now.Add(-time.Hour).Unix()}
		tok := sign(jwt.SigningMethodHS256, claims, svc.JWTSecret)
		if _, _, err := svc.VerifyToken(tok); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("err = %v", err)
		}
	})
	t.Run("unsigned algorithm", func(t *testing.T) {
		tok := sign(jwt.SigningMethodNone, base, jwt.UnsafeAllowNoneSignatureType)
		if _, _, err := svc.VerifyToken(tok); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("err = %v", err)
		}
	})
	t.Run("missing subject", func(t *testing.T) {
		claims := jwt.MapClaims{"iat": now.Unix(), "exp": now.Add(time.Hour).Unix()}
		tok := sign(jwt.SigningMethodHS256, claims, svc.JWTSecret)
		if _, _, err := svc.VerifyToken(tok); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("err = %v", err)
		}
	})
}
