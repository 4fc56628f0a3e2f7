package account

import "time"

// User is an account record keyed by the external identity provider's id.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ClerkID   string    `gorm:"size:191;uniqueIndex;not null" json:"clerk_id"`
	Email     string    `gorm:"size:320;not null" json:"email"`
	FirstName *string   `gorm:"size:120" json:"first_name,omitempty"`
	LastName  *string   `gorm:"size:120" json:"last_name,omitempty"`
	ImageURL  *string   `gorm:"size:512" json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
