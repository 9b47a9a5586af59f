package domain

import (
	"time"

	"github.com/google/uuid"
)

// Template is a saved packing list that can be reused across trips.
// Templates snapshot the list as-is; they are never regenerated.
type Template struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Destination string      `json:"destination"`
	Country     string      `json:"country"`
	PackingList PackingList `json:"packing_list"`
	CreatedAt   time.Time   `json:"created_at"`
}
