package auth

type RegisterOwnerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Portal   string `json:"portal" binding:"required"` // vehicleOwner | workshop | admin
}

type LoginResponse struct {
	Token   string `json:"token"`
	Role    string `json:"role"`
	Account any    `json:"account"`
}
