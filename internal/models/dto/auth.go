package dto

// RegisterRequest is the payload for user and admin registration.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login endpoints.
type AuthResponse struct {
	Token     string `json:"token"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	UserID    int64  `json:"userId"`
	ImagePath string `json:"imagePath,omitempty"`
}
