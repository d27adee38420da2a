package initializers

import (
	"log"
	"os"
	"strconv"
	"time"

	"camerahive/session"
)

// Sessions holds every live storefront session in memory. Nothing here
// survives a restart, matching the tab-scoped lifetime of cart and
// wishlist state.
var Sessions *session.Manager

func InitSessions() {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		log.Fatal("SESSION_SECRET is not set")
	}

	ttl := 24 * time.Hour
	if raw := os.Getenv("SESSION_TTL_HOURS"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil || hours <= 0 {
			log.Fatal("SESSION_TTL_HOURS must be a positive integer")
		}
		ttl = time.Duration(hours) * time.Hour
	}

	Sessions = session.NewManager(secret, ttl)
	log.Println("Session manager initialized, TTL", ttl)
}
