// Package proposals proxies stored proposal markdown to the dashboard.
//
// Content lives at proposals/<id>.md in a file.Storage backend, either a
// local directory or an S3 bucket. Every read failure, including malformed
// ids, is reported to clients as 404 "Proposal content not found".
package proposals
