package models

// Request DTOs carry validation tags; every form field is parsed and
// validated before any persistence attempt.

type RegisterRequest struct {
	Name     string `json:"name" form:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" form:"email" validate:"required,email,max=255"`
	Password string `json:"password" form:"password" validate:"required,min=6,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type AdminLoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// AddAptitudeRequest bounds scores to [0,100]; the legacy system accepted
// any integer.
type AddAptitudeRequest struct {
	Score int `json:"score" form:"score" validate:"min=0,max=100"`
}

type AddCertificationRequest struct {
	Title string `json:"title" form:"title" validate:"required,min=1,max=200"`
}
