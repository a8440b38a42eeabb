package models

// AuthResponse is the profile+token shape returned by register, login and
// profile endpoints.
type AuthResponse struct {
	ID      int64   `json:"id"`
	Email   string  `json:"email"`
	Name    string  `json:"name"`
	Mobile  string  `json:"mobile"`
	Aadhaar string  `json:"aadhaar"`
	Balance float64 `json:"balance"`
	Token   string  `json:"token"`
}

// NewAuthResponse builds an AuthResponse from a user record and an issued or
// presented token.
func NewAuthResponse(u *User, token string) *AuthResponse {
	return &AuthResponse{
		ID:      u.ID,
		Email:   u.Email,
		Name:    u.Name,
		Mobile:  u.Mobile,
		Aadhaar: u.Aadhaar,
		Balance: u.Balance,
		Token:   token,
	}
}
