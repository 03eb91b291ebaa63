package dto

// TokenInfo 表示令牌資訊
type TokenInfo struct {
	Value     string `json:"value"`
	ExpiresIn int    `json:"expires_in"`
}

// UserDTO 表示用戶資訊
type UserDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// LoginResponse 登入成功回傳
type LoginResponse struct {
	AccessToken TokenInfo `json:"access_token"`
	User        UserDTO   `json:"user"`
}

type SignUpDTO struct {
	Email       string `json:"email"`
	Password    string `json:"password"` //密碼明文
	DisplayName string `json:"display_name"`
}

type SignInDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"` //密碼明文
}

type ProfileDTO struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
}

// UpdateProfileDTO 不帶的欄位不更新
type UpdateProfileDTO struct {
	DisplayName *string `json:"display_name"`
	AvatarURL   *string `json:"avatar_url"`
}

type MeDTO struct {
	Profile ProfileDTO `json:"profile"`
	IsAdmin bool       `json:"is_admin"`
}
