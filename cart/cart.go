package cart

import (
	"errors"
	"fmt"
	"sync"

	"camerahive/models"
)

// MaxRentalDays caps how far repeated adds can push a rent line.
const MaxRentalDays = 30

var (
	ErrEmptyCart   = errors.New("cart is empty")
	ErrInvalidLine = errors.New("cart contains items with invalid price or rental days")
)

// Store holds one session's cart lines and wishlist entries in memory.
// Cart identity is (camera id, type); wishlist identity is camera id only.
// State lives exactly as long as the session does.
type Store struct {
	mu       sync.Mutex
	lines    []models.CartLine
	wishlist []models.WishlistEntry
	subs     []func()
}

func NewStore() *Store {
	return &Store{}
}

// Subscribe registers a callback fired after every mutation. Callbacks run
// synchronously, outside the store lock.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

func (s *Store) notify() {
	s.mu.Lock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// AddToCart appends a new line for (camera, type), or bumps the rental days
// on an existing rent line. Adding an existing buy line is a no-op beyond
// the confirmation notice. Always succeeds.
func (s *Store) AddToCart(camera models.Camera, lineType string) string {
	s.mu.Lock()
	found := false
	for i := range s.lines {
		if s.lines[i].Camera.ID == camera.ID && s.lines[i].Type == lineType {
			if lineType == models.TypeRent {
				days := s.lines[i].RentalDays + 1
				if days > MaxRentalDays {
					days = MaxRentalDays
				}
				s.lines[i].RentalDays = days
			}
			found = true
			break
		}
	}
	if !found {
		line := models.CartLine{Camera: camera, Type: lineType}
		if lineType == models.TypeRent {
			line.RentalDays = 1
		}
		s.lines = append(s.lines, line)
	}
	s.mu.Unlock()
	s.notify()
	return fmt.Sprintf("%s added to cart for %s", camera.Name, lineType)
}

// ChangeRentalDays adjusts the rental days on the line keyed by (id, type),
// clamped to at least 1. Missing lines and buy lines are left alone.
func (s *Store) ChangeRentalDays(cameraID, lineType string, delta int) {
	s.mu.Lock()
	for i := range s.lines {
		if s.lines[i].Camera.ID == cameraID && s.lines[i].Type == lineType && lineType == models.TypeRent {
			days := s.lines[i].RentalDays
			if days < 1 {
				days = 1
			}
			days += delta
			if days < 1 {
				days = 1
			}
			if days > MaxRentalDays {
				days = MaxRentalDays
			}
			s.lines[i].RentalDays = days
			break
		}
	}
	s.mu.Unlock()
	s.notify()
}

// RemoveFromCart deletes the line keyed by (id, type). Idempotent.
func (s *Store) RemoveFromCart(cameraID, lineType string) {
	s.mu.Lock()
	for i := range s.lines {
		if s.lines[i].Camera.ID == cameraID && s.lines[i].Type == lineType {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	s.notify()
}

// AddToWishlist appends the camera unless it is already saved. The returned
// notice tells the caller which case applied.
func (s *Store) AddToWishlist(camera models.Camera) (added bool, notice string) {
	s.mu.Lock()
	for i := range s.wishlist {
		if s.wishlist[i].Camera.ID == camera.ID {
			s.mu.Unlock()
			return false, fmt.Sprintf("%s is already in your wishlist", camera.Name)
		}
	}
	s.wishlist = append(s.wishlist, models.WishlistEntry{Camera: camera})
	s.mu.Unlock()
	s.notify()
	return true, fmt.Sprintf("%s added to wishlist", camera.Name)
}

// RemoveFromWishlist deletes the entry for the camera id. Idempotent.
func (s *Store) RemoveFromWishlist(cameraID string) {
	s.mu.Lock()
	for i := range s.wishlist {
		if s.wishlist[i].Camera.ID == cameraID {
			s.wishlist = append(s.wishlist[:i], s.wishlist[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	s.notify()
}

// Lines returns a copy of the current cart lines.
func (s *Store) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := make([]models.CartLine, len(s.lines))
	copy(lines, s.lines)
	return lines
}

// Wishlist returns a copy of the current wishlist entries.
func (s *Store) Wishlist() []models.WishlistEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := make([]models.WishlistEntry, len(s.wishlist))
	copy(entries, s.wishlist)
	return entries
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// Total sums every line: purchase price for buy lines, rental price times
// days for rent lines. Zero for an empty cart.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, line := range s.lines {
		total += lineTotal(line)
	}
	return total
}

// ValidateForCheckout reports whether the cart can be checked out: it must
// be non-empty, every line must carry a positive price for its mode, and
// every rent line must carry positive rental days. Pure, no side effects.
func (s *Store) ValidateForCheckout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.lines) == 0 {
		return ErrEmptyCart
	}
	for _, line := range s.lines {
		if line.Type == models.TypeRent {
			if line.Camera.RentalPrice <= 0 || line.RentalDays <= 0 {
				return ErrInvalidLine
			}
		} else if line.Camera.Price <= 0 {
			return ErrInvalidLine
		}
	}
	return nil
}

// CheckoutLines builds the payment payload from the current cart. Ephemeral:
// rebuilt on every checkout attempt.
func (s *Store) CheckoutLines() []models.CheckoutLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := make([]models.CheckoutLine, 0, len(s.lines))
	for _, line := range s.lines {
		out := models.CheckoutLine{
			CameraID: line.Camera.ID,
			Name:     line.Camera.Name,
			Type:     line.Type,
			Total:    lineTotal(line),
		}
		if line.Type == models.TypeRent {
			days := rentDays(line)
			out.Price = line.Camera.RentalPrice
			out.RentalDays = &days
		} else {
			out.Price = line.Camera.Price
		}
		lines = append(lines, out)
	}
	return lines
}

// Clear empties the cart after a successful checkout. The wishlist is never
// cleared here.
func (s *Store) Clear() {
	s.mu.Lock()
	s.lines = nil
	s.mu.Unlock()
	s.notify()
}

// rentDays resolves the effective rental days for a rent line, falling back
// to the camera's default and then to a single day.
func rentDays(line models.CartLine) int {
	if line.RentalDays > 0 {
		return line.RentalDays
	}
	if line.Camera.DefaultRentalDays > 0 {
		return line.Camera.DefaultRentalDays
	}
	return 1
}

func lineTotal(line models.CartLine) float64 {
	if line.Type == models.TypeRent {
		return line.Camera.RentalPrice * float64(rentDays(line))
	}
	return line.Camera.Price
}
