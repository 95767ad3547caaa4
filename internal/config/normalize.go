package config

import "github.com/google/uuid"

// Normalize fills in generated fields and rewrites the file when needed.
func Normalize(store Store) error {
	return store.UpdateConfig(func(cfg Config) (Config, error) {
		for i := range cfg.FloatRules {
			if cfg.FloatRules[i].UUID == "" {
				cfg.FloatRules[i].UUID = uuid.NewString()
			}
		}

		return cfg, nil
	})
}
