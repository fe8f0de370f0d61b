package responses

type UserCreated struct {
	Email string `json:"email"`
}

type Login struct {
	Token string `json:"token"`
}

type UserProfile struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
	Bio    string `json:"bio,omitempty"`
}

type ResetToken struct {
	ResetPasswordToken string `json:"resetPasswordToken"`
}
