package requests

type Signup struct {
	Name     string `json:"name" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=20"`
}

type Signin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfile struct {
	Name string `json:"name" validate:"omitempty,max=50"`
	Bio  string `json:"bio" validate:"omitempty,max=200"`
}

type ChangePassword struct {
	Password string `json:"password" validate:"required,min=8,max=20"`
}

type ForgotPassword struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPassword struct {
	ResetPasswordToken string `json:"resetPasswordToken" validate:"required"`
	Password           string `json:"password" validate:"required,min=8,max=20"`
}
