package models

// Role names carried in admin access tokens
const (
	RoleAdmin = "ADMIN"
)
