// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Dubrovin

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; the meaningful checks live on the
// [ClientConfig] view, which is what the runtime actually consumes.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Portal.Address == "" || cfg.Portal.RequestTimeout == 0 {
		return ErrInvalidPortalConfigs
	}

	if cfg.Workers.RefreshInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
