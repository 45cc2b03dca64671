// Package config loads the showcase client configuration.
//
// # Configuration Discovery
//
// Load resolves the file in this order:
//
//  1. An explicit path, when given
//  2. ~/.config/showcase/config.toml
//  3. Built-in defaults when the file does not exist
//
// Blank or non-positive values fall back to their defaults field by field.
//
// # TOML Format
//
//	api_base = "https://cms.example.com/"
//	timeout_ms = 10000
//	credentials_path = "~/.config/showcase/credentials.toml"
//	log_dir = "~/.local/state/showcase"
//	log_level = "info"
//	preview = false
//	page_query = "type=mainPage"
//	poll_seconds = 30
//
//	[carousel]
//	autoplay = true
//	interval_ms = 3000
//
// Paths accept a leading ~ and are returned absolute.
//
// # Error Handling
//
// A missing file is not an error. Unreadable files and TOML syntax errors are
// returned wrapped as "open config", "read config" or "parse config".
package config
