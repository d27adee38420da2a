package models

// Camera mirrors the catalog API's camera record. The service only ever
// holds copies of these; the remote catalog owns them.
type Camera struct {
	ID                string  `json:"_id"`
	Name              string  `json:"name" binding:"required"`
	Description       string  `json:"description"`
	About             string  `json:"about"`
	Category          string  `json:"category"`
	Price             float64 `json:"price"`
	RentalPrice       float64 `json:"rentalPrice"`
	DefaultRentalDays int     `json:"rentalDays"`
	Image             string  `json:"image"`
	Resolution        string  `json:"resolution"`
	Sensor            string  `json:"sensor"`
	Storage           string  `json:"storage"`
	Rating            int     `json:"rating"`
}
