package model

// Privilege represents a permission that can be assigned to users.
type Privilege struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // e.g., "product:create"
	Name string `gorm:"type:varchar(100)" json:"name"`
}

// Default privileges for the system
var DefaultPrivileges = []Privilege{
	// User management
	{Code: "user:view", Name: "View User"},
	{Code: "user:create", Name: "Create User"},
	{Code: "user:update", Name: "Update User"},
	{Code: "user:delete", Name: "Delete User"},
	{Code: "user:update_privilege", Name: "Update User Privileges"},
	// Master data
	{Code: "product:view", Name: "View Product"},
	{Code: "product:create", Name: "Create Product"},
	{Code: "product:update", Name: "Update Product"},
	{Code: "product:delete", Name: "Delete Product"},
	{Code: "product:import", Name: "Import Products"},
	{Code: "category:manage", Name: "Manage Categories"},
	{Code: "manufacturer:manage", Name: "Manage Manufacturers"},
	{Code: "unit:manage", Name: "Manage Units of Measure"},
	{Code: "supplier:manage", Name: "Manage Suppliers"},
	{Code: "customer:manage", Name: "Manage Customers"},
	// Operations
	{Code: "sale:view", Name: "View Sale"},
	{Code: "sale:create", Name: "Create Sale"},
	{Code: "purchase:view", Name: "View Purchase"},
	{Code: "purchase:create", Name: "Create Purchase"},
	{Code: "stock:adjust", Name: "Adjust Stock"},
	// Finance
	{Code: "credit:view", Name: "View Credit"},
	{Code: "credit:pay", Name: "Record Credit Payment"},
	{Code: "commission:view", Name: "View Commission"},
	{Code: "commission:manage", Name: "Manage Commissions"},
	// Dashboard
	{Code: "dashboard:view", Name: "View Dashboard"},
}
