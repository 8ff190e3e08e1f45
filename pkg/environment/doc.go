// Package environment names the deployment tiers the dashboard runs in.
//
// The tier is read once from APP_ENV at startup. Production switches the
// session cookie to HttpOnly and Secure and the logger to JSON output.
package environment
