package config

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"product_file":  "dataproduct.yaml",
		"contracts_dir": "contracts",
		"schema_dir":    "",
		"listen_addr":   "localhost:8311",
		"show_progress": true,
	}
}
