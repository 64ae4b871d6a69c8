// Package schemas provides the embedded MySQL migrations for flashcard sets
// and scores.
package schemas

import "embed"

// Migrations contains all SQL migration files, applied in file name order.
//
//go:embed migrations/*.sql
var Migrations embed.FS
