// Package config provides configuration management for audioshelf.
//
// This package implements a layered configuration system. Configuration is
// loaded from multiple sources and merged in order, with later sources
// overriding earlier ones.
//
// # Configuration Layers
//
//  1. Default Configuration (embedded in binary)
//     - Four ticks and sixty frames per second
//     - The default keybindings of the Home mode
//
//  2. User Configuration (~/.config/audioshelf/config.yaml)
//     - The directory can be moved with AUDIOSHELF_CONFIG
//
//  3. Project Configuration (./.audioshelf/config.yaml)
//
// LoadConfigFromPath skips layers 2 and 3 and reads a single directory.
//
// # Configuration Structure
//
//	tickRate: 4
//	frameRate: 60
//	library: ~/audiobooks/library.json
//	mouse: true
//	logLevel: debug
//	keybindings:
//	  Home:
//	    "<q>": Quit
//	    "<g><g>": NavigateFirst
//
// # Merge Behavior
//
// Scalar fields are replaced when a layer sets them, including to zero.
// Keybindings merge per mode and then per key sequence, so a layer only
// needs to list the sequences it changes. Mode names are matched without
// regard to case. Validation of sequences and action names happens when the
// keybinding table is built, and a malformed entry fails startup.
//
// # Environment
//
// AUDIOSHELF_LOGLEVEL overrides logLevel. AUDIOSHELF_DATA sets the data
// directory that holds the log file; it defaults to
// $XDG_DATA_HOME/audioshelf or ~/.local/share/audioshelf.
package config
