// Package config provides layered configuration for elditor.
//
// Sources are merged with higher layers overriding lower ones:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority (Config.Set)
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← ELDITOR_*
//	├─────────────────────────────┤
//	│  2. User Settings           │  ← ~/.config/elditor/config.{toml,yaml,yml}
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Basic Usage
//
//	cfg := config.New(config.WithConfigFile(path))
//	if err := cfg.Load(ctx); err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//	tabWidth := cfg.Editor().TabWidth
//
// # Configuration Files
//
//	# ~/.config/elditor/config.toml
//	[editor]
//	tabWidth = 4
//	expandTabs = true
//	scrollOff = 3
//
//	[ui]
//	selectionStyle = "underline"
//
//	[log]
//	level = "debug"
//	file = "$HOME/.cache/elditor.log"
package config
