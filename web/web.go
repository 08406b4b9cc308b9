// Package web carries the single-page query UI served at the root path.
package web

import _ "embed"

//go:embed index.html
var IndexHTML []byte
