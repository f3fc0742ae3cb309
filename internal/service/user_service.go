package service

import (
	"go-pharmacy-api/internal/model"
	"go-pharmacy-api/internal/repository"
	"go-pharmacy-api/pkg/apierr"
	"go-pharmacy-api/pkg/pagination"
	"go-pharmacy-api/pkg/validator"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required,min=8"`
	FirstName   string   `json:"firstName" validate:"required,max=100"`
	LastName    string   `json:"lastName" validate:"omitempty,max=100"`
	PhoneNumber string   `json:"phoneNumber" validate:"omitempty,max=30"`
	Gender      string   `json:"gender" validate:"omitempty,oneof=MALE FEMALE"`
	RoleCode    string   `json:"roleCode" validate:"required"`
	Privileges  []string `json:"privileges"`
}

type UpdateUserRequest struct {
	FirstName   string   `json:"firstName" validate:"required,max=100"`
	LastName    string   `json:"lastName" validate:"omitempty,max=100"`
	PhoneNumber string   `json:"phoneNumber" validate:"omitempty,max=30"`
	Gender      string   `json:"gender" validate:"omitempty,oneof=MALE FEMALE"`
	RoleCode    string   `json:"roleCode" validate:"omitempty"`
	Privileges  []string `json:"privileges"`
	IsActive    *bool    `json:"isActive"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

type UserService interface {
	Create(req CreateUserRequest, actor Actor) (*model.UserResponse, error)
	Update(id uuid.UUID, req UpdateUserRequest, actor Actor) (*model.UserResponse, error)
	Delete(id uuid.UUID, actor Actor) error
	List(params pagination.Params) ([]model.UserResponse, int64, error)
	FindAll() ([]model.UserResponse, error)
	Get(id uuid.UUID) (*model.UserResponse, error)
	ChangePassword(id uuid.UUID, req ChangePasswordRequest) error
	Roles() ([]model.Role, error)
	Privileges() ([]model.Privilege, error)
}

type userService struct {
	userRepo      repository.UserRepository
	roleRepo      repository.RoleRepository
	privilegeRepo repository.PrivilegeRepository
}

func NewUserService(
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	privilegeRepo repository.PrivilegeRepository,
) UserService {
	return &userService{
		userRepo:      userRepo,
		roleRepo:      roleRepo,
		privilegeRepo: privilegeRepo,
	}
}

// resolvePrivileges returns the explicit privilege set if one was sent,
// falling back to the role's defaults.
func (s *userService) resolvePrivileges(codes []string, role *model.Role) ([]model.Privilege, error) {
	if len(codes) == 0 {
		return role.Privileges, nil
	}
	privileges, err := s.privilegeRepo.FindByCodes(codes)
	if err != nil {
		return nil, err
	}
	if len(privileges) != len(codes) {
		return nil, apierr.Validation("privileges", "unknown privilege code")
	}
	return privileges, nil
}

func (s *userService) Create(req CreateUserRequest, actor Actor) (*model.UserResponse, error) {
	if errs := validator.ValidateStruct(&req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	if existing, _ := s.userRepo.FindByEmail(req.Email); existing != nil {
		return nil, apierr.Conflict("email already registered")
	}
	role, err := s.roleRepo.FindByCode(req.RoleCode)
	if err != nil {
		return nil, apierr.Validation("roleCode", "unknown role")
	}
	privileges, err := s.resolvePrivileges(req.Privileges, role)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Gender:      req.Gender,
		RoleID:      &role.ID,
		Role:        role,
		Privileges:  privileges,
		IsActive:    true,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}
	user.CreatedBy = actor.ID
	user.UpdatedBy = actor.ID

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	response := user.ToResponse()
	return &response, nil
}

func (s *userService) Update(id uuid.UUID, req UpdateUserRequest, actor Actor) (*model.UserResponse, error) {
	if errs := validator.ValidateStruct(&req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, apierr.NotFound("user")
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.PhoneNumber = req.PhoneNumber
	user.Gender = req.Gender
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.RoleCode != "" {
		role, err := s.roleRepo.FindByCode(req.RoleCode)
		if err != nil {
			return nil, apierr.Validation("roleCode", "unknown role")
		}
		user.RoleID = &role.ID
		user.Role = role
	}
	user.UpdatedBy = actor.ID

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	if len(req.Privileges) > 0 {
		privileges, err := s.privilegeRepo.FindByCodes(req.Privileges)
		if err != nil {
			return nil, err
		}
		if err := s.userRepo.UpdatePrivileges(user.ID, privileges); err != nil {
			return nil, err
		}
		user.Privileges = privileges
	}

	response := user.ToResponse()
	return &response, nil
}

// Delete refuses to remove the last master admin so the system cannot
// lock itself out.
func (s *userService) Delete(id uuid.UUID, actor Actor) error {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return apierr.NotFound("user")
	}
	if user.ID.String() == actor.ID {
		return apierr.Conflict("cannot delete your own account")
	}
	if user.Role != nil && user.Role.Code == model.RoleMasterAdmin {
		return apierr.Forbidden("master admin accounts cannot be deleted")
	}
	return s.userRepo.Delete(id, actor.ID)
}

func (s *userService) List(params pagination.Params) ([]model.UserResponse, int64, error) {
	users, total, err := s.userRepo.List(params)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]model.UserResponse, len(users))
	for i := range users {
		responses[i] = users[i].ToResponse()
	}
	return responses, total, nil
}

func (s *userService) FindAll() ([]model.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}
	responses := make([]model.UserResponse, len(users))
	for i := range users {
		responses[i] = users[i].ToResponse()
	}
	return responses, nil
}

func (s *userService) Get(id uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if notFound(err) {
			return nil, apierr.NotFound("user")
		}
		return nil, err
	}
	response := user.ToResponse()
	return &response, nil
}

func (s *userService) ChangePassword(id uuid.UUID, req ChangePasswordRequest) error {
	if errs := validator.ValidateStruct(&req); len(errs) > 0 {
		return validationError(errs)
	}
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return apierr.NotFound("user")
	}
	if !user.CheckPassword(req.CurrentPassword) {
		return apierr.Unauthorized("current password is incorrect")
	}
	if err := user.SetPassword(req.NewPassword); err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(user.ID, user.Password)
}

func (s *userService) Roles() ([]model.Role, error) {
	return s.roleRepo.FindAll()
}

func (s *userService) Privileges() ([]model.Privilege, error) {
	return s.privilegeRepo.FindAll()
}
