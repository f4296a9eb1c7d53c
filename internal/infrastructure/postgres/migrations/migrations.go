// Package migrations embarca as migrações SQL do esquema, aplicadas com goose
// na subida da aplicação.
package migrations

import "embed"

// Migrations é o filesystem embarcado com os arquivos .sql versionados.
//
//go:embed *.sql
var Migrations embed.FS
