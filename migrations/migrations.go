// Package migrations содержит встраиваемые SQL-миграции схемы БД.
// Применяются через goose при старте сервиса.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
