package models

// Purchase modes for a cart line.
const (
	TypeBuy  = "buy"
	TypeRent = "rent"
)

// CartLine is one (camera, type) entry awaiting checkout. A cart holds at
// most one line per (Camera.ID, Type) pair. RentalDays is meaningful only
// for rent lines and stays 0 on buy lines.
type CartLine struct {
	Camera     Camera `json:"camera"`
	Type       string `json:"type"`
	RentalDays int    `json:"rentalDays,omitempty"`
}

// WishlistEntry is a saved-for-later camera reference, independent of
// purchase mode.
type WishlistEntry struct {
	Camera Camera `json:"camera"`
}

// CheckoutLine is the per-line payload sent to the payment initiation
// endpoint. Built fresh for every checkout attempt, never stored.
type CheckoutLine struct {
	CameraID   string  `json:"cameraId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	RentalDays *int    `json:"rentalDays"`
	Type       string  `json:"type"`
	Total      float64 `json:"total"`
}
