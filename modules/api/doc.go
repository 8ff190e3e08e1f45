// Package api assembles the module routers under /api.
package api
