package dto

import (
	"github.com/spinwager/casino-backend/internal/domain/models"
	"github.com/spinwager/casino-backend/pkg/validator"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Mobile   string `json:"mobile"`
	Aadhaar  string `json:"aadhaar,omitempty"`
}

func (r *RegisterRequest) ToModel() *models.UserCreateRequest {
	return &models.UserCreateRequest{
		Email:    r.Email,
		Password: r.Password,
		Name:     r.Name,
		Mobile:   r.Mobile,
		Aadhaar:  r.Aadhaar,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func ValidateRegister(v *validator.Validator, r *RegisterRequest) {
	v.Check(r.Email != "", "email", "must be provided")
	v.Check(r.Email == "" || validator.Matches(r.Email, validator.EmailRX), "email", "must be a valid email address")
	v.Check(r.Password != "", "password", "must be provided")
	v.Check(len(r.Password) <= 72, "password", "must not be more than 72 bytes long")
	v.Check(r.Name != "", "name", "must be provided")
	v.Check(len(r.Name) <= 100, "name", "must not be more than 100 characters long")
	v.Check(len(r.Mobile) <= 20, "mobile", "must not be more than 20 characters long")
}

func ValidateLogin(v *validator.Validator, r *LoginRequest) {
	v.Check(r.Email != "", "email", "must be provided")
	v.Check(r.Password != "", "password", "must be provided")
}
