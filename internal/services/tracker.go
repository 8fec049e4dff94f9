package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"timelog/internal/amqp"
	"timelog/internal/core"
	"timelog/internal/store"
)

// DefaultSuggestLimit caps autocomplete results when the caller does not ask
// for a specific count.
const DefaultSuggestLimit = 8

// Timesheet is a fully materialized view of one day, week or month: the
// resolved range, per-entry durations and the category totals.
type Timesheet struct {
	Range   core.Range        `json:"range"`
	Rows    []core.TimedEntry `json:"rows"`
	Totals  core.Totals       `json:"totals"`
	TotalHM string            `json:"totalHM"`
}

// Tracker orchestrates entry and category operations across the snapshot
// store and AMQP change notifications.
type Tracker struct {
	snaps        *store.Snapshots
	amqpClient   *amqp.Client
	suggestLimit int
}

func NewTracker(snaps *store.Snapshots, amqpClient *amqp.Client, suggestLimit int) *Tracker {
	if suggestLimit <= 0 {
		suggestLimit = DefaultSuggestLimit
	}
	return &Tracker{
		snaps:        snaps,
		amqpClient:   amqpClient,
		suggestLimit: suggestLimit,
	}
}

// SubmitEntry resolves freeText against the category collection and appends a
// timestamped entry. A blank text is rejected with core.ErrBlankText.
func (t *Tracker) SubmitEntry(ctx context.Context, freeText string, ts time.Time) (core.Entry, error) {
	if strings.TrimSpace(freeText) == "" {
		return core.Entry{}, core.ErrBlankText
	}

	cats, err := t.snaps.Categories(ctx)
	if err != nil {
		return core.Entry{}, fmt.Errorf("load categories: %w", err)
	}

	res := core.Resolve(freeText, cats)
	if res.IsNew {
		// Ad-hoc categories go to the back so established categories keep
		// priority on future score ties.
		if err := t.saveCategories(ctx, append(cats, res.Category)); err != nil {
			return core.Entry{}, err
		}
		slog.InfoContext(ctx, "Created ad-hoc category",
			"id", res.Category.ID, "ticket", res.Category.Ticket)
	}

	entry := core.Entry{
		ID:         core.NewEntryID(),
		TS:         ts,
		RawText:    res.Category.Ticket,
		CategoryID: res.Category.ID,
		Label:      res.Category.Label,
	}

	entries, err := t.snaps.Entries(ctx)
	if err != nil {
		return core.Entry{}, fmt.Errorf("load entries: %w", err)
	}
	entries = append(entries, entry)
	core.SortEntries(entries)

	if err := t.snaps.SaveEntries(ctx, entries); err != nil {
		return core.Entry{}, fmt.Errorf("save entries: %w", err)
	}
	t.publishStoreUpdate(ctx, store.KeyEntries)

	return entry, nil
}

// EditEntry re-resolves an existing entry's text and timestamp. The entry's
// label snapshot is refreshed from the newly resolved category.
func (t *Tracker) EditEntry(ctx context.Context, id, freeText string, ts time.Time) (core.Entry, error) {
	if strings.TrimSpace(freeText) == "" {
		return core.Entry{}, core.ErrBlankText
	}

	entries, err := t.snaps.Entries(ctx)
	if err != nil {
		return core.Entry{}, fmt.Errorf("load entries: %w", err)
	}
	idx := -1
	for i := range entries {
		if entries[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return core.Entry{}, core.ErrNotFound
	}

	cats, err := t.snaps.Categories(ctx)
	if err != nil {
		return core.Entry{}, fmt.Errorf("load categories: %w", err)
	}

	res := core.Resolve(freeText, cats)
	if res.IsNew {
		if err := t.saveCategories(ctx, append(cats, res.Category)); err != nil {
			return core.Entry{}, err
		}
	}

	entries[idx].TS = ts
	entries[idx].RawText = res.Category.Ticket
	entries[idx].CategoryID = res.Category.ID
	entries[idx].Label = res.Category.Label
	core.SortEntries(entries)

	if err := t.snaps.SaveEntries(ctx, entries); err != nil {
		return core.Entry{}, fmt.Errorf("save entries: %w", err)
	}
	t.publishStoreUpdate(ctx, store.KeyEntries)

	for i := range entries {
		if entries[i].ID == id {
			return entries[i], nil
		}
	}
	return core.Entry{}, core.ErrNotFound
}

// DeleteEntry removes one entry by id.
func (t *Tracker) DeleteEntry(ctx context.Context, id string) error {
	entries, err := t.snaps.Entries(ctx)
	if err != nil {
		return fmt.Errorf("load entries: %w", err)
	}

	kept := entries[:0]
	found := false
	for _, e := range entries {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return core.ErrNotFound
	}

	if err := t.snaps.SaveEntries(ctx, kept); err != nil {
		return fmt.Errorf("save entries: %w", err)
	}
	t.publishStoreUpdate(ctx, store.KeyEntries)
	return nil
}

// AddCategory creates a user-defined category at the front of the collection
// so it shadows older categories on score ties.
func (t *Tracker) AddCategory(ctx context.Context, ticket, description string, nonWork bool) (core.Category, error) {
	c, err := core.NewCategory(ticket, description, nonWork)
	if err != nil {
		return core.Category{}, err
	}

	cats, err := t.snaps.Categories(ctx)
	if err != nil {
		return core.Category{}, fmt.Errorf("load categories: %w", err)
	}
	if err := t.saveCategories(ctx, append([]core.Category{c}, cats...)); err != nil {
		return core.Category{}, err
	}
	return c, nil
}

// UpdateCategory rewrites a category's fields and re-derives its label.
// Labels already snapshotted onto entries are left as they were recorded.
func (t *Tracker) UpdateCategory(ctx context.Context, id, ticket, description string, nonWork bool) (core.Category, error) {
	ticket = strings.TrimSpace(ticket)
	if ticket == "" {
		return core.Category{}, core.ErrEmptyTicket
	}
	description = strings.TrimSpace(description)
	if description == "" {
		description = "Custom category"
	}

	cats, err := t.snaps.Categories(ctx)
	if err != nil {
		return core.Category{}, fmt.Errorf("load categories: %w", err)
	}

	for i := range cats {
		if cats[i].ID != id {
			continue
		}
		cats[i].Ticket = ticket
		cats[i].Description = description
		cats[i].Label = core.MakeLabel(ticket, description)
		cats[i].NonWork = nonWork

		if err := t.snaps.SaveCategories(ctx, cats); err != nil {
			return core.Category{}, fmt.Errorf("save categories: %w", err)
		}
		t.publishStoreUpdate(ctx, store.KeyCategories)
		return cats[i], nil
	}
	return core.Category{}, core.ErrNotFound
}

// DeleteCategories removes every category whose id is listed and reports how
// many were removed. Entries referencing a removed category are kept; they
// simply stop contributing to totals.
func (t *Tracker) DeleteCategories(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	doomed := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		doomed[id] = struct{}{}
	}

	cats, err := t.snaps.Categories(ctx)
	if err != nil {
		return 0, fmt.Errorf("load categories: %w", err)
	}

	kept := cats[:0]
	removed := 0
	for _, c := range cats {
		if _, ok := doomed[c.ID]; ok {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	if removed == 0 {
		return 0, nil
	}

	if err := t.snaps.SaveCategories(ctx, kept); err != nil {
		return 0, fmt.Errorf("save categories: %w", err)
	}
	t.publishStoreUpdate(ctx, store.KeyCategories)
	return removed, nil
}

// Suggest returns autocomplete candidates for a partial query.
func (t *Tracker) Suggest(ctx context.Context, query string, limit int) ([]core.Category, error) {
	cats, err := t.snaps.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	if limit <= 0 {
		limit = t.suggestLimit
	}
	return core.Suggest(query, cats, limit), nil
}

// Timesheet builds the durations-and-totals view for the range containing ref.
func (t *Tracker) Timesheet(ctx context.Context, ref time.Time, unit core.RangeUnit, filter core.TotalsFilter) (Timesheet, error) {
	entries, err := t.snaps.Entries(ctx)
	if err != nil {
		return Timesheet{}, fmt.Errorf("load entries: %w", err)
	}
	cats, err := t.snaps.Categories(ctx)
	if err != nil {
		return Timesheet{}, fmt.Errorf("load categories: %w", err)
	}

	r := core.Bounds(ref, unit)
	rows := core.ComputeDurations(entries, r)
	totals := core.Aggregate(rows, cats, filter)

	return Timesheet{
		Range:   r,
		Rows:    rows,
		Totals:  totals,
		TotalHM: core.FormatMinutes(totals.TotalMinutes),
	}, nil
}

// Categories returns the current category collection in stored order.
func (t *Tracker) Categories(ctx context.Context) ([]core.Category, error) {
	return t.snaps.Categories(ctx)
}

// Entries returns all entries in ascending timestamp order.
func (t *Tracker) Entries(ctx context.Context) ([]core.Entry, error) {
	return t.snaps.Entries(ctx)
}

// saveCategories persists the collection and notifies other views.
func (t *Tracker) saveCategories(ctx context.Context, cats []core.Category) error {
	if err := t.snaps.SaveCategories(ctx, cats); err != nil {
		return fmt.Errorf("save categories: %w", err)
	}
	t.publishStoreUpdate(ctx, store.KeyCategories)
	return nil
}

func (t *Tracker) publishStoreUpdate(ctx context.Context, key string) {
	if t.amqpClient == nil {
		slog.DebugContext(ctx, "AMQP client not available, skipping store update", "key", key)
		return
	}
	if err := t.amqpClient.PublishStoreUpdate(ctx, key); err != nil {
		slog.ErrorContext(ctx, "Failed to publish store update",
			"key", key, "error", err)
		// Don't fail the request - the write already landed locally
	}
}
