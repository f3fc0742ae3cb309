package model

type Manufacturer struct {
	BaseModel
	Name         string `gorm:"type:varchar(150);uniqueIndex;not null" json:"name" validate:"required,max=150"`
	Country      string `gorm:"type:varchar(100)" json:"country"`
	ContactEmail string `gorm:"type:varchar(255)" json:"contactEmail" validate:"omitempty,email"`
	Phone        string `gorm:"type:varchar(30)" json:"phone"`
	Address      string `gorm:"type:text" json:"address"`

	Products []Product `json:"products,omitempty" validate:"-"`
}
