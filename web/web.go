// Package web embeds the static client entry page served for any route the
// API does not handle.
package web

import _ "embed"

//go:embed index.html
var Index []byte
