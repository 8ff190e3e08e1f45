// Package requestid tags every request with an identifier that shows up in
// the X-Request-ID response header and in log records.
package requestid
