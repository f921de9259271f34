package config

import (
	"context"
	"fmt"
)

// MultiLoader runs several format loaders over the same paths and merges
// their models in loader order.
type MultiLoader []Loader

// Load implements Loader.
func (ml MultiLoader) Load(ctx context.Context, paths ...string) (*Model, error) {
	merged := &Model{}
	for _, l := range ml {
		m, err := l.Load(ctx, paths...)
		if err != nil {
			return nil, err
		}
		merged.Merge(m)
	}
	if err := Validate(merged); err != nil {
		return nil, fmt.Errorf("invalid merged configuration: %w", err)
	}
	return merged, nil
}
