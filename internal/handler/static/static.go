// Package static embeds the API documentation served under /docs and /static.
package static

import "embed"

// FS holds openapi.json and the openapi.html viewer page.
//
//go:embed openapi.json openapi.html
var FS embed.FS
