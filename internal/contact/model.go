package contact

// Contact belongs to exactly one user. Optional fields are nil when absent.
type Contact struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	PhoneNumber *string `json:"phone_number" db:"phone_number"`
	Address     *string `json:"address" db:"address"`
	Email       *string `json:"email" db:"email"`
	UserID      int64   `json:"user_id" db:"user_id"`
}
