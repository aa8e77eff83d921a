package services

import (
	"testing"

	"order_manager/internal/apierror"
	"order_manager/internal/models"
	"order_manager/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type stubUserRepo struct {
	repository.UserRepository
	users map[string]*models.User
	roles map[string]*models.UserRole
}

func (s *stubUserRepo) GetByEmailOrPhone(email, phoneNumber string) (*models.User, error) {
	for _, user := range s.users {
		if (email != "" && user.Email == email) || (phoneNumber != "" && user.PhoneNumber == phoneNumber) {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) GetRoleByID(id string) (*models.UserRole, error) {
	role, ok := s.roles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return role, nil
}

func newAuthFixture(t *testing.T) (AuthService, *stubUserRepo) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	userRepo := &stubUserRepo{
		users: map[string]*models.User{
			"u1": {
				ID:          "u1",
				UserName:    "planner",
				Email:       "planner@example.com",
				PhoneNumber: "8888888888",
				Password:    string(hashed),
				UserRoleID:  "r1",
				IsActive:    true,
			},
		},
		roles: map[string]*models.UserRole{
			"r1": {ID: "r1", UserRole: models.RolePlanning},
		},
	}

	svc := NewAuthService(userRepo, nil, nil, nil, "test-secret", 1, 60)
	return svc, userRepo
}

func TestTokenRoundTrip(t *testing.T) {
	svc, _ := newAuthFixture(t)

	token, err := svc.GenerateToken("u1", models.RoleDistributor, "d1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != "u1" || claims.RoleName != models.RoleDistributor || claims.EntityID != "d1" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseTokenRejectsForeignSecret(t *testing.T) {
	svc, _ := newAuthFixture(t)
	other := NewAuthService(nil, nil, nil, nil, "other-secret", 1, 60)

	token, err := other.GenerateToken("u1", models.RolePlanning, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.ParseToken(token); err == nil {
		t.Fatal("expected token signed with another secret to be rejected")
	}
}

func TestLoginEmbedsRoleInClaims(t *testing.T) {
	svc, _ := newAuthFixture(t)

	result, err := svc.Login(LoginInput{Email: "planner@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.RoleName != models.RolePlanning {
		t.Fatalf("expected planning role, got %s", result.RoleName)
	}

	claims, err := svc.ParseToken(result.Token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.RoleName != models.RolePlanning {
		t.Fatalf("expected role in claims, got %s", claims.RoleName)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(LoginInput{Email: "planner@example.com", Password: "wrong"})
	if err == nil {
		t.Fatal("expected wrong password to be rejected")
	}
	apiErr, ok := err.(*apierror.APIError)
	if !ok || apiErr.Code != apierror.CodeInvalidPassword {
		t.Fatalf("expected invalid password code, got %v", err)
	}
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(LoginInput{Email: "ghost@example.com", Password: "whatever"})
	if err == nil {
		t.Fatal("expected unknown user to be rejected")
	}
	apiErr, ok := err.(*apierror.APIError)
	if !ok || apiErr.Code != apierror.CodeUserNotFound {
		t.Fatalf("expected user not found code, got %v", err)
	}
}

func TestLoginRejectsInactiveUser(t *testing.T) {
	svc, userRepo := newAuthFixture(t)
	userRepo.users["u1"].IsActive = false

	if _, err := svc.Login(LoginInput{Email: "planner@example.com", Password: "secret123"}); err == nil {
		t.Fatal("expected deactivated user to be rejected")
	}
}
