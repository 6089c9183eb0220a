package models

// Credentials - login/register payload sent to the backend
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginResponse - backend answer to a successful login
type LoginResponse struct {
	Token string `json:"token"`
}

// AdminUser - user record as listed for administrators
type AdminUser struct {
	ID       string `json:"_id"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
	IsActive bool   `json:"isActive"`
}

// UserUpdate - partial user update issued by administrators
type UserUpdate struct {
	IsActive *bool `json:"isActive,omitempty"`
	IsAdmin  *bool `json:"isAdmin,omitempty"`
}
