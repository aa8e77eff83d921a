package services

import (
	"errors"
	"log"
	"time"

	"order_manager/internal/apierror"
	"order_manager/internal/models"
	"order_manager/internal/redis"
	"order_manager/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Claims carry the role name and the role-specific entity id (distributor id,
// executive id, manager id) so request handlers never re-query the role
// tables.
type Claims struct {
	UserID   string `json:"user_id"`
	RoleName string `json:"role_name"`
	EntityID string `json:"entity_id,omitempty"`
	jwt.RegisteredClaims
}

type LoginInput struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password" binding:"required"`
}

type LoginResult struct {
	Token    string       `json:"token"`
	User     *models.User `json:"user"`
	RoleName string       `json:"role_name"`
}

type AuthService interface {
	Login(input LoginInput) (*LoginResult, error)
	GenerateToken(userID, roleName, entityID string) (string, error)
	ParseToken(tokenString string) (*Claims, error)
}

type authService struct {
	userRepo        repository.UserRepository
	distributorRepo repository.DistributorRepository
	executiveRepo   repository.ExecutiveRepository
	cache           *redis.Client
	jwtSecret       []byte
	expiration      time.Duration
	cacheTTL        time.Duration
}

func NewAuthService(
	userRepo repository.UserRepository,
	distributorRepo repository.DistributorRepository,
	executiveRepo repository.ExecutiveRepository,
	cache *redis.Client,
	jwtSecret string,
	expirationDays int,
	cacheTTLSeconds int,
) AuthService {
	return &authService{
		userRepo:        userRepo,
		distributorRepo: distributorRepo,
		executiveRepo:   executiveRepo,
		cache:           cache,
		jwtSecret:       []byte(jwtSecret),
		expiration:      time.Duration(expirationDays) * 24 * time.Hour,
		cacheTTL:        time.Duration(cacheTTLSeconds) * time.Second,
	}
}

func (s *authService) Login(input LoginInput) (*LoginResult, error) {
	if input.Email == "" && input.PhoneNumber == "" {
		return nil, apierror.New("email or phone number is required", apierror.CodeInvalidInputs)
	}

	user, err := s.userRepo.GetByEmailOrPhone(input.Email, input.PhoneNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.New("user does not exist", apierror.CodeUserNotFound)
		}
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}
	if !user.IsActive {
		return nil, apierror.New("user account is deactivated", apierror.CodeUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, apierror.New("invalid password", apierror.CodeInvalidPassword)
	}

	roleName, err := s.resolveRoleName(user.UserRoleID)
	if err != nil {
		return nil, err
	}

	entityID, err := s.resolveEntityID(user.ID, roleName)
	if err != nil {
		return nil, err
	}

	token, err := s.GenerateToken(user.ID, roleName, entityID)
	if err != nil {
		return nil, apierror.Wrap(err, apierror.CodeInternal)
	}

	return &LoginResult{Token: token, User: user, RoleName: roleName}, nil
}

func (s *authService) resolveRoleName(roleID string) (string, error) {
	if s.cache != nil {
		if name, err := s.cache.GetRoleName(roleID); err == nil {
			return name, nil
		}
	}

	role, err := s.userRepo.GetRoleByID(roleID)
	if err != nil {
		return "", apierror.New("invalid user role", apierror.CodeInvalidRole)
	}

	if s.cache != nil {
		if err := s.cache.SetRoleName(roleID, role.UserRole, s.cacheTTL); err != nil {
			log.Printf("Warning: failed to cache role name: %v", err)
		}
	}
	return role.UserRole, nil
}

// resolveEntityID looks up the role-specific profile row so its id can ride
// in the token. Roles without a profile table get an empty entity id.
func (s *authService) resolveEntityID(userID, roleName string) (string, error) {
	switch roleName {
	case models.RoleDistributor:
		d, err := s.distributorRepo.GetByUserID(userID)
		if err != nil {
			return "", apierror.New("distributor profile not found", apierror.CodeUserNotFound)
		}
		return d.ID, nil
	case models.RoleManager:
		m, err := s.executiveRepo.GetManagerByUserID(userID)
		if err != nil {
			return "", apierror.New("manager profile not found", apierror.CodeUserNotFound)
		}
		return m.ID, nil
	case models.RoleSalesExecutive, models.RoleStoresExecutive, models.RoleWindingExecutive,
		models.RoleAssemblyExecutive, models.RoleTestingExecutive, models.RolePackingExecutive,
		models.RoleQCExecutive:
		e, err := s.executiveRepo.GetByUserID(userID)
		if err != nil {
			return "", apierror.New("executive profile not found", apierror.CodeUserNotFound)
		}
		return e.ID, nil
	default:
		return "", nil
	}
}

func (s *authService) GenerateToken(userID, roleName, entityID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   userID,
		RoleName: roleName,
		EntityID: entityID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *authService) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apierror.New("unexpected signing method", apierror.CodeUnauthorized)
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, apierror.New("invalid or expired token", apierror.CodeUnauthorized)
	}
	return claims, nil
}
