package model

type Category struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name" validate:"required,max=100"`
	Description string `gorm:"type:text" json:"description"`

	Products []Product `json:"products,omitempty" validate:"-"`
}
