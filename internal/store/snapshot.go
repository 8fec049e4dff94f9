package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"timelog/internal/core"
)

// Snapshots reads and writes the two record collections on top of a KV
// backend. Collections are serialized as ordered JSON arrays. A missing or
// malformed snapshot never surfaces as an error: categories fall back to the
// default set and entries to an empty collection.
type Snapshots struct {
	kv KV
}

func NewSnapshots(kv KV) *Snapshots {
	return &Snapshots{kv: kv}
}

// Categories returns the persisted category collection in stored order.
func (s *Snapshots) Categories(ctx context.Context) ([]core.Category, error) {
	raw, ok, err := s.kv.Get(ctx, KeyCategories)
	if err != nil {
		return nil, fmt.Errorf("get categories snapshot: %w", err)
	}
	if !ok {
		return core.DefaultCategories(), nil
	}
	var cats []core.Category
	if err := json.Unmarshal(raw, &cats); err != nil {
		slog.WarnContext(ctx, "Malformed category snapshot, using defaults",
			"key", KeyCategories, "error", err)
		return core.DefaultCategories(), nil
	}
	return cats, nil
}

// SaveCategories replaces the category collection.
func (s *Snapshots) SaveCategories(ctx context.Context, cats []core.Category) error {
	raw, err := json.Marshal(cats)
	if err != nil {
		return fmt.Errorf("marshal categories: %w", err)
	}
	if err := s.kv.Set(ctx, KeyCategories, raw); err != nil {
		return fmt.Errorf("set categories snapshot: %w", err)
	}
	return nil
}

// Entries returns the persisted entry collection in stored (ascending) order.
func (s *Snapshots) Entries(ctx context.Context) ([]core.Entry, error) {
	raw, ok, err := s.kv.Get(ctx, KeyEntries)
	if err != nil {
		return nil, fmt.Errorf("get entries snapshot: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var entries []core.Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		slog.WarnContext(ctx, "Malformed entry snapshot, starting empty",
			"key", KeyEntries, "error", err)
		return nil, nil
	}
	return entries, nil
}

// SaveEntries replaces the entry collection. Callers keep it sorted.
func (s *Snapshots) SaveEntries(ctx context.Context, entries []core.Entry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal entries: %w", err)
	}
	if err := s.kv.Set(ctx, KeyEntries, raw); err != nil {
		return fmt.Errorf("set entries snapshot: %w", err)
	}
	return nil
}
