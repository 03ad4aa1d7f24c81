// Package config provides configuration loading for the inventory
// tool.
//
// Configuration is loaded from a YAML file, with defaults applied
// first and environment variables applied last:
//
//	inventory:
//	  path: "./data/devices.txt"
//	registry:
//	  capacity: 15
//	logging:
//	  level: "info"      # debug, info, warn, error
//	  format: "text"     # json, text
//	  output: "stdout"   # stdout, stderr
//
// Environment overrides follow the pattern MDINV_SECTION_KEY, for
// example MDINV_INVENTORY_PATH and MDINV_LOG_LEVEL.
package config
