package set_login

// SetLoginRequest HTTP request model
type SetLoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required"`
}
