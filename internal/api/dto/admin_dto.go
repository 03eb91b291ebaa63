package dto

type AdminUserDTO struct {
	UserID      string   `json:"user_id"`
	Email       string   `json:"email"`
	DisplayName string   `json:"display_name"`
	Roles       []string `json:"roles"`
	IsAdmin     bool     `json:"is_admin"`
}

type PromoteByEmailDTO struct {
	Email string `json:"email"`
}

type PromoteResponse struct {
	UserID string `json:"user_id"`
}
