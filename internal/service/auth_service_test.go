package service

import (
	"errors"
	"testing"

	"go-pos-ws/internal/model"
	"go-pos-ws/internal/repository"

	"gorm.io/gorm"
)

func createUser(t *testing.T, db *gorm.DB, email, password string, role model.Role, active bool) *model.User {
	t.Helper()
	user := &model.User{Email: email, FullName: "Test Operator", Role: role, IsActive: active}
	if err := user.SetPassword(password); err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))

	createUser(t, db, "cashier@example.com", "secret123", model.RoleCashier, true)

	resp, err := svc.Login("cashier@example.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.Token == "" {
		t.Error("empty token")
	}
	if resp.User.Role != model.RoleCashier {
		t.Errorf("role = %s, want cashier", resp.User.Role)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))

	createUser(t, db, "cashier@example.com", "secret123", model.RoleCashier, true)

	if _, err := svc.Login("cashier@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login("nobody@example.com", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginRejectsInactiveUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))

	createUser(t, db, "former@example.com", "secret123", model.RoleCashier, false)

	if _, err := svc.Login("former@example.com", "secret123"); !errors.Is(err, ErrUserInactive) {
		t.Errorf("err = %v, want ErrUserInactive", err)
	}
}

func TestResetPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))

	createUser(t, db, "cashier@example.com", "secret123", model.RoleCashier, true)

	if err := svc.ResetPassword("cashier@example.com", "wrong", "newpass456"); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("err = %v, want ErrWrongPassword", err)
	}

	if err := svc.ResetPassword("cashier@example.com", "secret123", "newpass456"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if _, err := svc.Login("cashier@example.com", "newpass456"); err != nil {
		t.Errorf("login with new password: %v", err)
	}
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepo(db))

	_, err := svc.CreateUser(&CreateUserRequest{
		Email: "cashier@example.com", Password: "secret123", FullName: "One", Role: model.RoleCashier,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.CreateUser(&CreateUserRequest{
		Email: "cashier@example.com", Password: "secret456", FullName: "Two", Role: model.RoleAdmin,
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}
