package model

// User 外部身份提供方回传的用户事实，本服务不保存任何凭证
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
