// Package scripts embeds the core Lua scripts loaded at boot.
package scripts

import "embed"

//go:embed core/*.lua
var CoreScripts embed.FS
