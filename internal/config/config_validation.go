// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 matu-sky

package config

// validate checks that the final merged [StructuredConfig] satisfies the
// server startup invariants: a database to store menus in, a key to sign
// session tokens with, and a public origin for generated links.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.DisplayBaseURL == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
