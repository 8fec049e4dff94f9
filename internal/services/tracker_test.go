package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"timelog/internal/core"
	"timelog/internal/store"
)

func newTestTracker() *Tracker {
	return NewTracker(store.NewSnapshots(store.NewMemory()), nil, 0)
}

func TestSubmitEntryResolvesExistingCategory(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker()

	ts := time.Date(2026, 8, 26, 9, 0, 0, 0, time.Local)
	entry, err := tr.SubmitEntry(ctx, "  85n  ", ts)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if entry.CategoryID != "cat-85n" {
		t.Fatalf("expected cat-85n, got %s", entry.CategoryID)
	}
	if entry.RawText != "85n" || entry.Label != "85n — API epic" {
		t.Fatalf("unexpected entry fields: %+v", entry)
	}

	cats, _ := tr.Categories(ctx)
	if len(cats) != len(core.DefaultCategories()) {
		t.Fatalf("existing match must not grow the category collection: %d", len(cats))
	}
}

func TestSubmitEntryCreatesAdHocCategoryOnce(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker()

	entry, err := tr.SubmitEntry(ctx, "zzqqxx", time.Now())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	cats, _ := tr.Categories(ctx)
	if len(cats) != len(core.DefaultCategories())+1 {
		t.Fatalf("expected one new category, got %d", len(cats))
	}
	// Ad-hoc categories are appended so established ones win score ties.
	last := cats[len(cats)-1]
	if last.ID != entry.CategoryID {
		t.Fatalf("ad-hoc category should be appended, got %+v", last)
	}
	if last.Label != "zzqqxx" || last.Description != "Ad-hoc" {
		t.Fatalf("unexpected ad-hoc category: %+v", last)
	}

	// A second submission with the same text must reuse the category.
	second, err := tr.SubmitEntry(ctx, "zzqqxx", time.Now())
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if second.CategoryID != entry.CategoryID {
		t.Fatalf("expected reuse of %s, got %s", entry.CategoryID, second.CategoryID)
	}
	cats, _ = tr.Categories(ctx)
	if len(cats) != len(core.DefaultCategories())+1 {
		t.Fatalf("category duplicated on second submit: %d", len(cats))
	}
}

func TestSubmitEntryRejectsBlankText(t *testing.T) {
	tr := newTestTracker()
	if _, err := tr.SubmitEntry(context.Background(), "   ", time.Now()); !errors.Is(err, core.ErrBlankText) {
		t.Fatalf("expected ErrBlankText, got %v", err)
	}
}

func TestSubmitEntryKeepsEntriesSorted(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker()

	late := time.Date(2026, 8, 26, 14, 0, 0, 0, time.Local)
	early := time.Date(2026, 8, 26, 9, 0, 0, 0, time.Local)
	if _, err := tr.SubmitEntry(ctx, "85n", late); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := tr.SubmitEntry(ctx, "STANDUP", early); err != nil {
		t.Fatalf("submit: %v", err)
	}

	entries, _ := tr.Entries(ctx)
	if len(entries) != 2 || !entries[0].TS.Equal(early) {
		t.Fatalf("entries not in ascending order: %+v", entries)
	}
}

func TestEditEntryReResolves(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker()

	ts := time.Date(2026, 8, 26, 9, 0, 0, 0, time.Local)
	entry, err := tr.SubmitEntry(ctx, "85n", ts)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	moved := ts.Add(30 * time.Minute)
	updated, err := tr.EditEntry(ctx, entry.ID, "STANDUP", moved)
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if updated.CategoryID != "cat-standup" || updated.Label != "STANDUP — Daily stand-up" {
		t.Fatalf("edit did not re-resolve: %+v", updated)
	}
	if !updated.TS.Equal(moved) {
		t.Fatalf("timestamp not updated: %v", updated.TS)
	}

	if _, err := tr.EditEntry(ctx, "e-missing", "85n", ts); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteEntry(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker()

	entry, err := tr.SubmitEntry(ctx, "85n", time.Now())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := tr.DeleteEntry(ctx, entry.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	entries, _ := tr.Entries(ctx)
	if len(entries) != 0 {
		t.Fatalf("entry survived delete: %+v", entries)
	}
	if err := tr.DeleteEntry(ctx, entry.ID); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCategoryCRUD(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker()

	c, err := tr.AddCategory(ctx, "PROJ-1", "New project", false)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if c.Label != "PROJ-1 — New project" {
		t.Fatalf("unexpected label: %q", c.Label)
	}
	cats, _ := tr.Categories(ctx)
	if cats[0].ID != c.ID {
		t.Fatalf("new category should come first, got %+v", cats[0])
	}

	updated, err := tr.UpdateCategory(ctx, c.ID, "PROJ-2", "Renamed", true)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Label != "PROJ-2 — Renamed" || !updated.NonWork {
		t.Fatalf("unexpected updated category: %+v", updated)
	}
	if _, err := tr.UpdateCategory(ctx, "cat-missing", "x", "y", false); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := tr.UpdateCategory(ctx, c.ID, "  ", "y", false); !errors.Is(err, core.ErrEmptyTicket) {
		t.Fatalf("expected ErrEmptyTicket, got %v", err)
	}

	removed, err := tr.DeleteCategories(ctx, []string{c.ID, "cat-85n", "cat-missing"})
	if err != nil {
		t.Fatalf("bulk delete: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	cats, _ = tr.Categories(ctx)
	if len(cats) != len(core.DefaultCategories())-1 {
		t.Fatalf("unexpected category count after delete: %d", len(cats))
	}
}

func TestSuggestUsesConfiguredLimit(t *testing.T) {
	ctx := context.Background()
	tr := NewTracker(store.NewSnapshots(store.NewMemory()), nil, 2)

	got, err := tr.Suggest(ctx, "work item", 0)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(got) > 2 {
		t.Fatalf("limit not applied: %d results", len(got))
	}

	got, err = tr.Suggest(ctx, "   ", 0)
	if err != nil || got != nil {
		t.Fatalf("blank query should yield nil: %v %v", got, err)
	}
}

func TestTimesheetDayView(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker()

	day := time.Date(2026, 8, 26, 0, 0, 0, 0, time.Local)
	submit := func(text string, hour, min int) {
		t.Helper()
		ts := time.Date(2026, 8, 26, hour, min, 0, 0, time.Local)
		if _, err := tr.SubmitEntry(ctx, text, ts); err != nil {
			t.Fatalf("submit %q: %v", text, err)
		}
	}
	submit("85n", 9, 0)
	submit("STANDUP", 9, 45)
	submit("85n", 10, 0)

	sheet, err := tr.Timesheet(ctx, day, core.UnitDay, core.FilterWork)
	if err != nil {
		t.Fatalf("timesheet: %v", err)
	}

	if len(sheet.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(sheet.Rows))
	}
	mins := []int{sheet.Rows[0].Minutes, sheet.Rows[1].Minutes, sheet.Rows[2].Minutes}
	if mins[0] != 45 || mins[1] != 15 || mins[2] != 0 {
		t.Fatalf("unexpected durations: %v", mins)
	}

	if sheet.Totals.TotalMinutes != 60 {
		t.Fatalf("expected 60 total minutes, got %d", sheet.Totals.TotalMinutes)
	}
	if len(sheet.Totals.Rows) != 2 {
		t.Fatalf("expected 2 total rows, got %+v", sheet.Totals.Rows)
	}
	if sheet.Totals.Rows[0].Label != "85n — API epic" || sheet.Totals.Rows[0].Minutes != 45 {
		t.Fatalf("unexpected top row: %+v", sheet.Totals.Rows[0])
	}
	if sheet.Totals.Rows[1].Label != "STANDUP — Daily stand-up" || sheet.Totals.Rows[1].Minutes != 15 {
		t.Fatalf("unexpected second row: %+v", sheet.Totals.Rows[1])
	}
	if sheet.TotalHM != "1h 00m" {
		t.Fatalf("unexpected total: %q", sheet.TotalHM)
	}

	if !sheet.Range.Start.Equal(day) {
		t.Fatalf("range should start at midnight: %v", sheet.Range.Start)
	}
}

func TestTimesheetNonWorkExcludedFromWorkFilter(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker()

	submit := func(text string, hour, min int) {
		t.Helper()
		ts := time.Date(2026, 8, 26, hour, min, 0, 0, time.Local)
		if _, err := tr.SubmitEntry(ctx, text, ts); err != nil {
			t.Fatalf("submit %q: %v", text, err)
		}
	}
	submit("85n", 9, 0)
	submit("Lunch", 12, 0)
	submit("85n", 13, 0)

	day := time.Date(2026, 8, 26, 0, 0, 0, 0, time.Local)
	work, err := tr.Timesheet(ctx, day, core.UnitDay, core.FilterWork)
	if err != nil {
		t.Fatalf("timesheet: %v", err)
	}
	if work.Totals.TotalMinutes != 180 {
		t.Fatalf("work filter should count 180 minutes, got %d", work.Totals.TotalMinutes)
	}

	all, err := tr.Timesheet(ctx, day, core.UnitDay, core.FilterAll)
	if err != nil {
		t.Fatalf("timesheet: %v", err)
	}
	if all.Totals.TotalMinutes != 240 {
		t.Fatalf("all filter should count 240 minutes, got %d", all.Totals.TotalMinutes)
	}
}
