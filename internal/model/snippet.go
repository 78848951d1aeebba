// internal/model/snippet.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Snippet is a stored playground program together with the code generated
// for it at save time.
type Snippet struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title     string    `gorm:"type:text" json:"title"`
	Source    string    `gorm:"type:text;not null" json:"source"`
	Code      string    `gorm:"type:text;not null" json:"code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
