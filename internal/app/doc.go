// Package app is the composition root. It owns the application's logger,
// registry, host, and configuration loader, and its Run method performs
// the bootstrap registration pass in a deterministic order. Taxonomies
// never register themselves behind the caller's back.
package app
