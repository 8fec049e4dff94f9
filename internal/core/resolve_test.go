package core

import "testing"

func TestResolveExistingCategory(t *testing.T) {
	cats := DefaultCategories()
	res := Resolve("85n", cats)
	if res.IsNew {
		t.Fatalf("expected existing category for 85n")
	}
	if res.Category.ID != "cat-85n" {
		t.Fatalf("resolved wrong category: %s", res.Category.ID)
	}
}

func TestResolveAdHoc(t *testing.T) {
	cats := DefaultCategories()
	res := Resolve("zzqqxx", cats)
	if !res.IsNew {
		t.Fatalf("expected ad-hoc category for unmatched text")
	}
	c := res.Category
	if c.Ticket != "zzqqxx" || c.Description != "Ad-hoc" || c.NonWork {
		t.Fatalf("unexpected ad-hoc category: %+v", c)
	}
	if c.Label != "zzqqxx" {
		t.Fatalf("ad-hoc label should be the bare ticket, got %q", c.Label)
	}
	if c.ID == "" {
		t.Fatalf("ad-hoc category needs a fresh id")
	}

	// A second resolve must mint a different id: the caller owns persistence.
	again := Resolve("zzqqxx", cats)
	if again.Category.ID == c.ID {
		t.Fatalf("expected a fresh id per resolution")
	}
}

func TestResolveTrimsAdHocTicket(t *testing.T) {
	res := Resolve("  solowork  ", nil)
	if !res.IsNew || res.Category.Ticket != "solowork" {
		t.Fatalf("expected trimmed ad-hoc ticket, got %+v", res.Category)
	}
}

func TestResolveTieKeepsFirst(t *testing.T) {
	cats := []Category{
		{ID: "a", Ticket: "same", Description: "one", Label: "same — one"},
		{ID: "b", Ticket: "same", Description: "two", Label: "same — two"},
	}
	res := Resolve("same", cats)
	if res.IsNew || res.Category.ID != "a" {
		t.Fatalf("tie should resolve to the first category, got %+v", res)
	}
}

func TestSuggest(t *testing.T) {
	cats := DefaultCategories()

	if got := Suggest("   ", cats, 8); len(got) != 0 {
		t.Fatalf("blank query should yield no suggestions, got %d", len(got))
	}
	if got := Suggest("85", cats, 0); len(got) != 0 {
		t.Fatalf("zero limit should yield no suggestions, got %d", len(got))
	}

	got := Suggest("85n", cats, 8)
	if len(got) == 0 || got[0].ID != "cat-85n" {
		t.Fatalf("expected cat-85n first, got %+v", got)
	}
	for _, c := range got {
		if categoryScore("85n", c) == 0 {
			t.Fatalf("zero-score category %s leaked into suggestions", c.ID)
		}
	}

	if got := Suggest("work item", cats, 1); len(got) != 1 {
		t.Fatalf("limit not applied: got %d suggestions", len(got))
	}
}

func TestSuggestStableTies(t *testing.T) {
	cats := []Category{
		{ID: "a", Ticket: "85h", Description: "Work item", Label: "85h — Work item"},
		{ID: "b", Ticket: "85i", Description: "Work item", Label: "85i — Work item"},
	}
	got := Suggest("work item", cats, 8)
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("equal scores must keep list order, got %+v", got)
	}
}
