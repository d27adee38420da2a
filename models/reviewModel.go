package models

import "time"

// Review is a user review for a completed rental, owned by the catalog API.
type Review struct {
	ID        string    `json:"_id"`
	RentalID  string    `json:"rentalId" binding:"required"`
	Rating    int       `json:"rating" binding:"required,min=1,max=5"`
	Comment   string    `json:"comment"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}
