// Package contributors serves the contributors leaderboard.
//
// The data comes from a Store. PostgresStore queries the contributors table
// through pgx, SupabaseStore goes through the PostgREST API, and CachedStore
// puts a Redis layer in front of either. Store failures surface to clients
// as a generic 500; the cause is only logged.
package contributors
