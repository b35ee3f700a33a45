// Package config loads areaselect settings.
//
// Settings come from three places, later ones overriding earlier ones:
//
//  1. Default()
//  2. a TOML (.toml) or YAML (.yaml, .yml) file
//  3. AREASELECT_* environment variables
//
// Example TOML file:
//
//	[interaction]
//	stop_for_move = true
//
//	[keys]
//	multi_select = ["ctrl", "shift"]
//
//	[area]
//	x = 2
//	y = 2
//	width = 60
//	height = 16
//	items = 12
//
//	[logging]
//	level = "debug"
//	file = "/tmp/areaselect.log"
//
// A Watcher reports rewrites of the file so the application can reload it.
package config
