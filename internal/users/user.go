package users

import "time"

// User is one authorized admin operator, as stored in the primary
// credential store. The backend only ever reads these records; they are
// seeded with the create_admin command.
type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	DisplayName  string    `json:"displayName"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}
