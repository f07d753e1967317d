// Package digest produces short, stable digests of backend payloads for
// display and logging, so a rendered page or a parse failure can be matched
// against the exact body the backend sent.
package digest
