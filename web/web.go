// Package web embeds the browser form UI served at /.
package web

import _ "embed"

// Index contains the raw bytes of index.html, embedded at compile time.
// The page is self-contained (no build step, no external assets) so the
// UI always matches the API it ships with.
//
//go:embed index.html
var Index []byte
