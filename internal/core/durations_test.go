package core

import (
	"testing"
	"time"
)

func at(day, hour, min int) time.Time {
	return time.Date(2026, 8, day, hour, min, 0, 0, time.Local)
}

func entryAt(id string, ts time.Time) Entry {
	return Entry{ID: id, TS: ts, CategoryID: "cat-" + id}
}

func TestComputeDurationsSameDayGaps(t *testing.T) {
	entries := []Entry{
		entryAt("a", at(26, 9, 0)),
		entryAt("b", at(26, 9, 30)),
	}
	rows := ComputeDurations(entries, Bounds(at(26, 12, 0), UnitDay))
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Minutes != 30 || rows[1].Minutes != 0 {
		t.Fatalf("minutes = [%d, %d], want [30, 0]", rows[0].Minutes, rows[1].Minutes)
	}
}

func TestComputeDurationsLastOfDayIsZeroAcrossDays(t *testing.T) {
	// Day two starts five minutes after day one ends; the calendar-day
	// boundary still cuts the gap.
	entries := []Entry{
		entryAt("a", at(26, 23, 0)),
		entryAt("b", at(26, 23, 55)),
		entryAt("c", at(27, 0, 0)),
		entryAt("d", at(27, 8, 30)),
	}
	rows := ComputeDurations(entries, Bounds(at(26, 12, 0), UnitWeek))
	want := []int{55, 0, 510, 0}
	for i, w := range want {
		if rows[i].Minutes != w {
			t.Fatalf("row %d minutes = %d, want %d", i, rows[i].Minutes, w)
		}
	}
}

func TestComputeDurationsFiltersToRange(t *testing.T) {
	entries := []Entry{
		entryAt("before", at(25, 9, 0)),
		entryAt("in", at(26, 9, 0)),
		entryAt("after", at(27, 9, 0)),
	}
	rows := ComputeDurations(entries, Bounds(at(26, 12, 0), UnitDay))
	if len(rows) != 1 || rows[0].ID != "in" {
		t.Fatalf("expected only the in-range entry, got %+v", rows)
	}
}

func TestComputeDurationsIdenticalTimestamps(t *testing.T) {
	entries := []Entry{
		entryAt("first", at(26, 9, 0)),
		entryAt("second", at(26, 9, 0)),
		entryAt("third", at(26, 10, 0)),
	}
	rows := ComputeDurations(entries, Bounds(at(26, 12, 0), UnitDay))
	if rows[0].ID != "first" || rows[1].ID != "second" {
		t.Fatalf("identical timestamps must keep insertion order: %+v", rows)
	}
	if rows[0].Minutes != 0 || rows[1].Minutes != 60 || rows[2].Minutes != 0 {
		t.Fatalf("minutes = [%d, %d, %d], want [0, 60, 0]",
			rows[0].Minutes, rows[1].Minutes, rows[2].Minutes)
	}
}

func TestComputeDurationsRoundsToNearestMinute(t *testing.T) {
	base := at(26, 9, 0)
	entries := []Entry{
		{ID: "a", TS: base},
		{ID: "b", TS: base.Add(90 * time.Second)},
		{ID: "c", TS: base.Add(90*time.Second + 29*time.Second)},
	}
	rows := ComputeDurations(entries, Bounds(base, UnitDay))
	// 90s rounds to 2, 29s rounds to 0.
	if rows[0].Minutes != 2 || rows[1].Minutes != 0 {
		t.Fatalf("rounding off: [%d, %d]", rows[0].Minutes, rows[1].Minutes)
	}
}

func TestComputeDurationsSortsUnorderedInput(t *testing.T) {
	entries := []Entry{
		entryAt("late", at(26, 11, 0)),
		entryAt("early", at(26, 9, 0)),
	}
	rows := ComputeDurations(entries, Bounds(at(26, 12, 0), UnitDay))
	if rows[0].ID != "early" || rows[0].Minutes != 120 {
		t.Fatalf("expected chronological order with 120m gap, got %+v", rows)
	}
}

func TestComputeDurationsEmpty(t *testing.T) {
	rows := ComputeDurations(nil, Bounds(at(26, 12, 0), UnitDay))
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}
