// Package clientip extracts the caller IP for request logs.
//
// The result is informational only. Proxy headers are trusted as sent, so
// never use it for access control.
package clientip
