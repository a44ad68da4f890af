package config

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants the application depends on at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.Server.MaxBodyBytes <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Client.LocalStorageQuota <= 0 || cfg.Client.DraftDebounce <= 0 {
		return ErrInvalidClientConfigs
	}

	return nil
}
