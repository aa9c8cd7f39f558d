package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Aqil0709/store-rating-fullstack/internal/core/domain"
	"github.com/Aqil0709/store-rating-fullstack/internal/core/ports"
	"github.com/Aqil0709/store-rating-fullstack/internal/core/token"
)

func newAuthService(users ports.UserRepository, guard ports.LoginGuard) *AuthService {
	issuer := token.NewIssuer("test-secret", time.Hour)
	return NewAuthService(users, issuer, guard, zerolog.Nop())
}

func signupInput() ports.SignupInput {
	return ports.SignupInput{
		Name:     "Alice Example",
		Email:    "alice@example.com",
		Address:  "12 High Street",
		Password: "Abcd123!",
	}
}

func TestAuthService_Signup_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)

	user, err := svc.Signup(context.Background(), signupInput())
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role user, got %s", user.Role)
	}
	if user.PasswordHash == "Abcd123!" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Abcd123!")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Signup_OwnerRoleAllowed(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), nil)

	input := signupInput()
	input.Role = "owner"
	user, err := svc.Signup(context.Background(), input)
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if user.Role != domain.RoleOwner {
		t.Fatalf("expected role owner, got %s", user.Role)
	}
}

func TestAuthService_Signup_AdminRoleRejected(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), nil)

	input := signupInput()
	input.Role = "admin"
	if _, err := svc.Signup(context.Background(), input); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAuthService_Signup_PolicyViolations(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), nil)

	cases := []struct {
		name   string
		mutate func(*ports.SignupInput)
	}{
		{"password missing symbol", func(in *ports.SignupInput) { in.Password = "Abc12345" }},
		{"password missing uppercase and symbol", func(in *ports.SignupInput) { in.Password = "abcd1234" }},
		{"password too short", func(in *ports.SignupInput) { in.Password = "Ab1!" }},
		{"name too short", func(in *ports.SignupInput) { in.Name = "A" }},
		{"unknown role", func(in *ports.SignupInput) { in.Role = "manager" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := signupInput()
			tc.mutate(&input)
			if _, err := svc.Signup(context.Background(), input); !domain.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), nil)

	if _, err := svc.Signup(context.Background(), signupInput()); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	if _, err := svc.Signup(context.Background(), signupInput()); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)

	input := signupInput()
	input.Role = "owner"
	if _, err := svc.Signup(context.Background(), input); err != nil {
		t.Fatalf("signup: %v", err)
	}

	raw, user, err := svc.Login(context.Background(), input.Email, input.Password)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if raw == "" {
		t.Fatal("expected token")
	}
	if user.Email != input.Email {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := token.NewIssuer("test-secret", time.Hour).Verify(raw)
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != domain.RoleOwner {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), nil)

	input := signupInput()
	if _, err := svc.Signup(context.Background(), input); err != nil {
		t.Fatalf("signup: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), input.Email, "Wrong123!"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), nil)

	// Unknown email must be indistinguishable from a wrong password.
	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "Abcd123!"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	guard := newStubLoginGuard()
	svc := newAuthService(newStubUserRepo(), guard)

	input := signupInput()
	if _, err := svc.Signup(context.Background(), input); err != nil {
		t.Fatalf("signup: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, _, err := svc.Login(context.Background(), input.Email, "Wrong123!"); err != domain.ErrInvalidCredentials {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i, err)
		}
	}

	// Budget exhausted: even the correct password is rejected now.
	if _, _, err := svc.Login(context.Background(), input.Email, input.Password); err != domain.ErrTooManyAttempts {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_Login_ResetsGuardOnSuccess(t *testing.T) {
	guard := newStubLoginGuard()
	svc := newAuthService(newStubUserRepo(), guard)

	input := signupInput()
	if _, err := svc.Signup(context.Background(), input); err != nil {
		t.Fatalf("signup: %v", err)
	}

	_, _, _ = svc.Login(context.Background(), input.Email, "Wrong123!")
	if _, _, err := svc.Login(context.Background(), input.Email, input.Password); err != nil {
		t.Fatalf("login after single failure: %v", err)
	}
	if guard.failures[input.Email] != 0 {
		t.Fatalf("expected failure count reset, got %d", guard.failures[input.Email])
	}
}

func TestAuthService_UpdatePassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)

	input := signupInput()
	user, err := svc.Signup(context.Background(), input)
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	if err := svc.UpdatePassword(context.Background(), user.ID, "Wrong123!", "Efgh456!"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for wrong current password, got %v", err)
	}
	if err := svc.UpdatePassword(context.Background(), user.ID, input.Password, "weak"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for weak new password, got %v", err)
	}

	if err := svc.UpdatePassword(context.Background(), user.ID, input.Password, "Efgh456!"); err != nil {
		t.Fatalf("update password: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), input.Email, "Efgh456!"); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), input.Email, input.Password); err != domain.ErrInvalidCredentials {
		t.Fatalf("old password should be rejected, got %v", err)
	}
}
