package user

// User is an account that owns contacts. PasswordHash never leaves the service.
type User struct {
	ID           int64   `json:"id" db:"id"`
	Username     string  `json:"username" db:"username"`
	PasswordHash string  `json:"-" db:"password_hash"`
	Token        *string `json:"token" db:"token"`
}
