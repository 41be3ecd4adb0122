package entity

import "time"

// Category agrupa productos (Claviers, Souris, CPU...). Sin jerarquía.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
