// Package config loads blockkit settings from files and the environment.
//
// A config file may be YAML, TOML, or JSON, chosen by extension:
//
//	# blockkit.yaml
//	delimiters:
//	  - open: "{"
//	    close: "}"
//	  - open: "("
//	    close: ")"
//	format: tree
//	max_text: 60
//
// Environment variables with the BLOCKKIT_ prefix override file values.
package config
