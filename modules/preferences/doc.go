// Package preferences stores dashboard settings per wallet address.
//
// Both routes require a verified session: GET returns the stored settings
// or Defaults, PUT validates and upserts them. PostgresStore keeps them in
// the wallet_preferences table, which Migrations creates via pg.Migrate.
package preferences
