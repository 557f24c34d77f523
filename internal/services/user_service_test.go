package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"

	"arendaBack/internal/models"
	"arendaBack/internal/repositories"
)

func newUserService(t *testing.T) (*UserService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	svc := &UserService{
		UserRepo:   &repositories.UserRepository{DB: db},
		SigningKey: "test-signing-key",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	}
	return svc, mock
}

func userColumns() []string {
	return []string{"id", "email", "username", "phone", "avatar_path", "rating", "role", "is_active", "password", "created_at", "updated_at"}
}

func TestRegisterPasswordMismatch(t *testing.T) {
	svc, mock := newUserService(t)

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:                "a@example.com",
		Username:             "alice",
		Password:             "password123",
		PasswordConfirmation: "password124",
	})

	var validationErr *models.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if validationErr.Field != "password_confirmation" {
		t.Errorf("expected password_confirmation field error, got %q", validationErr.Field)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected database access: %v", err)
	}
}

func TestRegisterPasswordLength(t *testing.T) {
	svc, _ := newUserService(t)

	for _, password := range []string{"short", string(make([]byte, 129))} {
		_, err := svc.Register(context.Background(), models.RegisterRequest{
			Email:                "a@example.com",
			Username:             "alice",
			Password:             password,
			PasswordConfirmation: password,
		})

		var validationErr *models.ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected validation error for %d-char password, got %v", len(password), err)
		}
		if validationErr.Field != "password" {
			t.Errorf("expected password field error, got %q", validationErr.Field)
		}
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, mock := newUserService(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("a@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(1, "a@example.com", "alice", "", "", 0.0, "user", true, "hash", time.Now(), nil))

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:                "a@example.com",
		Username:             "other",
		Password:             "password123",
		PasswordConfirmation: "password123",
	})
	if !errors.Is(err, models.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	// The second user must not be created.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected insert after duplicate email: %v", err)
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, mock := newUserService(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("a@example.com").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO users").
		WithArgs("a@example.com", "alice", "", "", 0.0, "user", true, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	user, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:                "a@example.com",
		Username:             "alice",
		Password:             "password123",
		PasswordConfirmation: "password123",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID != 1 {
		t.Errorf("expected id 1, got %d", user.ID)
	}
	if user.Password != "" {
		t.Errorf("plaintext or hashed password leaked in response: %q", user.Password)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestLoginInvalidPassword(t *testing.T) {
	svc, mock := newUserService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("a@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(1, "a@example.com", "alice", "", "", 0.0, "user", true, string(hash), time.Now(), nil))

	_, err = svc.Login(context.Background(), models.LoginRequest{Email: "a@example.com", Password: "wrong"})
	if !errors.Is(err, models.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, mock := newUserService(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("missing@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "missing@example.com", Password: "whatever"})
	if !errors.Is(err, models.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginDisabledAccount(t *testing.T) {
	svc, mock := newUserService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("a@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(1, "a@example.com", "alice", "", "", 0.0, "user", false, string(hash), time.Now(), nil))

	_, err = svc.Login(context.Background(), models.LoginRequest{Email: "a@example.com", Password: "correct-horse"})
	if !errors.Is(err, models.ErrUserDisabled) {
		t.Fatalf("expected ErrUserDisabled, got %v", err)
	}
}
