package engine

import (
	"context"
	"encoding/json"
	"fmt"

	"blklauncher/internal/storage"
)

// readJSON returns the value stored under key. An absent key or a corrupted
// blob reads as the type's zero value; only store failures are errors.
func readJSON[T any](ctx context.Context, st storage.Store, key string) (T, error) {
	var zero T
	raw, err := st.Get(ctx, key)
	if err != nil {
		return zero, err
	}
	if len(raw) == 0 {
		return zero, nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		// Corrupted state is recovered locally, never propagated.
		return zero, nil
	}
	return v, nil
}

func writeJSON(ctx context.Context, st storage.Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	if err := st.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("persist %q: %w", key, err)
	}
	return nil
}
