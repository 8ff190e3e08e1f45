package preferences

import (
	"context"
	"time"
)

const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"

	MaxWatchlist      = 50
	MaxWatchlistEntry = 128
)

// Preferences are the per-wallet dashboard settings.
type Preferences struct {
	Address   string     `json:"address"`
	Theme     string     `json:"theme"`
	Watchlist []string   `json:"watchlist"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Defaults returns the preferences served before a wallet saves any.
func Defaults(address string) Preferences {
	return Preferences{Address: address, Theme: ThemeSystem, Watchlist: []string{}}
}

// Store persists preferences keyed by wallet address.
// Get returns ErrNotFound when nothing is stored for address.
type Store interface {
	Get(ctx context.Context, address string) (Preferences, error)
	Upsert(ctx context.Context, p Preferences) (Preferences, error)
}
