package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"arendaBack/internal/models"
	"arendaBack/internal/repositories"
	"arendaBack/internal/services"
)

func newUserHandler(t *testing.T) (*UserHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	handler := &UserHandler{
		Service: &services.UserService{
			UserRepo:   &repositories.UserRepository{DB: db},
			SigningKey: "test-signing-key",
			AccessTTL:  time.Minute,
			RefreshTTL: time.Hour,
		},
	}
	return handler, mock
}

func TestUpdateUserIgnoresPrivilegeFields(t *testing.T) {
	handler, mock := newUserHandler(t)

	// The UPDATE carries profile fields only, no role or is_active, whatever
	// the body claims.
	mock.ExpectExec("UPDATE users SET email").
		WithArgs("a@b.c", "eve", "", "", sqlmock.AnyArg(), 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM users WHERE id").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "username", "phone", "avatar_path", "rating", "role", "is_active", "password", "created_at", "updated_at"}).
			AddRow(7, "a@b.c", "eve", "", "", 0.0, "user", true, "hash", time.Now(), nil))

	body := `{"email": "a@b.c", "username": "eve", "role": "admin", "is_active": false}`
	req := httptest.NewRequest(http.MethodPut, "/users/7?:id=7", strings.NewReader(body))
	req = withIdentity(req, 7, "user")
	rec := httptest.NewRecorder()

	handler.UpdateUser(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var user models.User
	if err := json.NewDecoder(rec.Body).Decode(&user); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if user.Role != "user" {
		t.Errorf("role escalated to %q", user.Role)
	}
	if !user.IsActive {
		t.Error("account disabled by a profile update")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpdateUserKeepsAccountActiveWhenOmitted(t *testing.T) {
	handler, mock := newUserHandler(t)

	mock.ExpectExec("UPDATE users SET email").
		WithArgs("a@b.c", "eve", "", "", sqlmock.AnyArg(), 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM users WHERE id").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "username", "phone", "avatar_path", "rating", "role", "is_active", "password", "created_at", "updated_at"}).
			AddRow(7, "a@b.c", "eve", "", "", 0.0, "user", true, "hash", time.Now(), nil))

	// is_active omitted from the body must not zero the column.
	body := `{"email": "a@b.c", "username": "eve"}`
	req := httptest.NewRequest(http.MethodPut, "/users/7?:id=7", strings.NewReader(body))
	req = withIdentity(req, 7, "user")
	rec := httptest.NewRecorder()

	handler.UpdateUser(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var user models.User
	if err := json.NewDecoder(rec.Body).Decode(&user); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !user.IsActive {
		t.Error("account disabled by a profile update")
	}
}
