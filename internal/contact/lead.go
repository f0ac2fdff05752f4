package contact

import "time"

// Lead is a message left through the public contact form.
type Lead struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	UserIP    string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}
