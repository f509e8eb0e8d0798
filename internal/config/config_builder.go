package config

import (
	"fmt"

	"dario.cat/mergo"
)

// configSource produces one configuration layer. It receives the merge
// result of the layers registered before it, so a source may resolve its own
// inputs (the JSON file path) from earlier layers. Returning a nil config
// means the source has nothing to contribute.
type configSource func(merged *StructuredConfig) (*StructuredConfig, error)

// configBuilder assembles a StructuredConfig from an ordered list of lazy
// sources. Sources run only at build time, in registration order; mergo
// fills only fields still zero, so an earlier source always wins over a
// later one.
type configBuilder struct {
	sources []configSource
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{}
}

func (b *configBuilder) with(src configSource) *configBuilder {
	b.sources = append(b.sources, src)
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	return b.with(func(*StructuredConfig) (*StructuredConfig, error) {
		cfg := &StructuredConfig{}
		if err := parseEnv(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	})
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.with(func(*StructuredConfig) (*StructuredConfig, error) {
		return ParseFlags(), nil
	})
}

// withJSON registers the file layer. It must come after the layers that can
// carry the file path; with no path resolved the layer is skipped.
func (b *configBuilder) withJSON() *configBuilder {
	return b.with(func(merged *StructuredConfig) (*StructuredConfig, error) {
		if merged.JSONFilePath == "" {
			return nil, nil
		}
		return parseJSON(merged.JSONFilePath)
	})
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	merged := new(StructuredConfig)
	for _, src := range b.sources {
		layer, err := src(merged)
		if err != nil {
			return nil, fmt.Errorf("error building config: %w", err)
		}
		if layer == nil {
			continue
		}
		if err := mergo.Merge(merged, layer); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return merged, merged.validate()
}
