// Package web holds the embedded single-page UI.
package web

import (
	_ "embed"
)

//go:embed index.html
var IndexHTML []byte
