// Package drills embeds resources shared by the binaries of the module.
package drills

import "embed"

// Migrations holds the goose SQL migrations under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS
