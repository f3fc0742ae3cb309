package service

import (
	"go-pharmacy-api/internal/model"
	"go-pharmacy-api/internal/repository"
	"go-pharmacy-api/pkg/apierr"
	"go-pharmacy-api/pkg/jwt"
	"go-pharmacy-api/pkg/validator"

	"github.com/google/uuid"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// LoginResponse bundles the token pair with the authenticated profile
// so the client can render without a second round trip.
type LoginResponse struct {
	jwt.TokenPair
	User model.UserResponse `json:"user"`
}

type AuthService interface {
	Login(req LoginRequest) (*LoginResponse, error)
	Refresh(req RefreshRequest) (*LoginResponse, error)
	Me(userID uuid.UUID) (*model.UserResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) issue(user *model.User) (*LoginResponse, error) {
	roleCode := ""
	if user.Role != nil {
		roleCode = user.Role.Code
	}
	pair, err := jwt.GeneratePair(user.ID, user.Email, user.FullName(), roleCode,
		user.GetPrivilegeCodes(), user.TokenVersion)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{TokenPair: *pair, User: user.ToResponse()}, nil
}

// Login verifies credentials and rotates the token version, which
// invalidates every token issued by earlier logins (single session).
func (s *authService) Login(req LoginRequest) (*LoginResponse, error) {
	if errs := validator.ValidateStruct(&req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil || !user.CheckPassword(req.Password) {
		return nil, apierr.Unauthorized("invalid email or password")
	}
	if !user.IsActive {
		return nil, apierr.Forbidden("account is deactivated")
	}

	user.TokenVersion = uuid.NewString()
	if err := s.userRepo.UpdateTokenVersion(user.ID, user.TokenVersion); err != nil {
		return nil, err
	}
	_ = s.userRepo.UpdateLastSeen(user.ID)

	return s.issue(user)
}

// Refresh exchanges a valid refresh token for a fresh pair. The token
// version is checked but not rotated, so refresh does not kick out the
// session that is refreshing.
func (s *authService) Refresh(req RefreshRequest) (*LoginResponse, error) {
	if errs := validator.ValidateStruct(&req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	claims, err := jwt.ValidateRefresh(req.RefreshToken)
	if err != nil {
		return nil, apierr.Unauthorized("invalid refresh token")
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, apierr.Unauthorized("user no longer exists")
	}
	if !user.IsActive {
		return nil, apierr.Forbidden("account is deactivated")
	}
	if user.TokenVersion != claims.TokenVersion {
		return nil, apierr.Unauthorized("session superseded by a newer login")
	}

	_ = s.userRepo.UpdateLastSeen(user.ID)
	return s.issue(user)
}

func (s *authService) Me(userID uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apierr.NotFound("user")
	}
	response := user.ToResponse()
	return &response, nil
}
