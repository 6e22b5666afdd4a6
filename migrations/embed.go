// Package migrations embebe los .sql del esquema para aplicarlos al arranque.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
