package model

type Supplier struct {
	BaseModel
	Name     string `gorm:"type:varchar(150);not null;index" json:"name" validate:"required,max=150"`
	Email    string `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	Phone    string `gorm:"type:varchar(30)" json:"phone"`
	Address  string `gorm:"type:text" json:"address"`
	TinNumber string `gorm:"type:varchar(30)" json:"tinNumber"`
	IsActive bool   `gorm:"default:true" json:"isActive"`
}
