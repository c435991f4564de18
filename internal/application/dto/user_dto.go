package dto

import "time"

// RegisterRequest entrada para registro (password en texto, se hashea en use case).
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Language string `json:"language" validate:"omitempty,len=2"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest entrada para PUT /api/auth/me. Campos vacíos no se tocan.
// Language se persiste y el frontend sincroniza su i18n con este valor después
// de cada fetch/update de perfil (paso explícito, no reacción implícita).
type UpdateProfileRequest struct {
	Name     string `json:"name" validate:"omitempty,min=1,max=200"`
	Language string `json:"language" validate:"omitempty,len=2"`
	ImageURL string `json:"image_url" validate:"omitempty,url"`
}

// MembershipResponse membresía del usuario en un negocio, con los campos
// denormalizados que necesita el selector de negocio.
type MembershipResponse struct {
	ID       string      `json:"id"`
	Business BusinessRef `json:"business"`
	Role     string      `json:"role"`
	Title    string      `json:"title,omitempty"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Email       string               `json:"email"`
	Language    string               `json:"language"`
	ImageURL    string               `json:"image_url,omitempty"`
	Verified    bool                 `json:"verified"`
	Status      string               `json:"status"`
	Memberships []MembershipResponse `json:"memberships"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// LoginResponse salida con token JWT y el usuario con sus membresías.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
