package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User represents an authenticated user in the system.
type User struct {
	BaseModel
	Email       string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	Password    string `gorm:"type:varchar(255);not null" json:"-"` // hidden from JSON
	FirstName   string `gorm:"type:varchar(100);not null" json:"firstName" validate:"required,max=100"`
	LastName    string `gorm:"type:varchar(100)" json:"lastName"`
	PhoneNumber string `gorm:"type:varchar(30)" json:"phoneNumber"`
	Gender      string `gorm:"type:varchar(10)" json:"gender" validate:"omitempty,oneof=MALE FEMALE"`

	ProfileImagePath string `gorm:"type:varchar(255)" json:"profileImagePath"`

	RoleID     *uint       `gorm:"index" json:"roleId"`
	Role       *Role       `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Privileges []Privilege `gorm:"many2many:user_privileges;" json:"privileges,omitempty"`

	IsActive     bool       `gorm:"default:true" json:"isActive"`
	TokenVersion string     `gorm:"type:varchar(255);default:''" json:"-"` // single-session enforcement
	LastSeenAt   *time.Time `json:"lastSeenAt,omitempty"`
}

// FullName joins the name fields for display and token claims.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// SetPassword hashes and sets the user's password.
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies the provided password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

// HasPrivilege checks if the user has a specific privilege.
func (u *User) HasPrivilege(code string) bool {
	for _, p := range u.Privileges {
		if p.Code == code {
			return true
		}
	}
	return false
}

// GetPrivilegeCodes returns all privilege codes for this user.
func (u *User) GetPrivilegeCodes() []string {
	codes := make([]string, len(u.Privileges))
	for i, p := range u.Privileges {
		codes[i] = p.Code
	}
	return codes
}

// UserResponse is used for API responses (without sensitive data).
type UserResponse struct {
	ID               uuid.UUID   `json:"id"`
	Email            string      `json:"email"`
	FirstName        string      `json:"firstName"`
	LastName         string      `json:"lastName"`
	PhoneNumber      string      `json:"phoneNumber"`
	Gender           string      `json:"gender,omitempty"`
	ProfileImagePath string      `json:"profileImagePath,omitempty"`
	RoleID           *uint       `json:"roleId,omitempty"`
	Role             *Role       `json:"role,omitempty"`
	IsActive         bool        `json:"isActive"`
	LastSeenAt       *time.Time  `json:"lastSeenAt,omitempty"`
	Privileges       []Privilege `json:"privileges"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

// ToResponse converts User to UserResponse.
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:               u.ID,
		Email:            u.Email,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		PhoneNumber:      u.PhoneNumber,
		Gender:           u.Gender,
		ProfileImagePath: u.ProfileImagePath,
		RoleID:           u.RoleID,
		Role:             u.Role,
		IsActive:         u.IsActive,
		LastSeenAt:       u.LastSeenAt,
		Privileges:       u.Privileges,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}
