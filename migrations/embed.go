// Package migrations embeds the TeslaMate-shaped test schema so the goose
// programmatic API can build a throwaway database for integration tests.
// Nothing in the server applies these; the production schema is TeslaMate's.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
// Pass this to a goose provider instead of relying on a filesystem
// path at runtime.
//
//go:embed *.sql
var FS embed.FS
