package core

// DefaultCategories returns the preset categories seeded when no category
// snapshot has been persisted yet.
func DefaultCategories() []Category {
	return []Category{
		{ID: "cat-85n", Ticket: "85n", Description: "API epic", Label: "85n — API epic"},
		{ID: "cat-85h", Ticket: "85h", Description: "Work item", Label: "85h — Work item"},
		{ID: "cat-85i", Ticket: "85i", Description: "Work item", Label: "85i — Work item"},
		{ID: "cat-112g", Ticket: "112g", Description: "Work item", Label: "112g — Work item"},
		{ID: "cat-api", Ticket: "API", Description: "Ticket", Label: "API — Ticket"},
		{ID: "cat-standup", Ticket: "STANDUP", Description: "Daily stand-up", Label: "STANDUP — Daily stand-up"},
		{ID: "cat-refine", Ticket: "Refinement", Description: "Backlog/Refinement", Label: "Refinement — Backlog/Refinement"},
		{ID: "cat-retro", Ticket: "Retro", Description: "Sprint retrospective", Label: "Retro — Sprint retrospective"},
		{ID: "cat-demo", Ticket: "Sprint demo", Description: "Sprint review/demo", Label: "Sprint demo — Sprint review/demo"},
		{ID: "cat-attachments", Ticket: "File attachments", Description: "Call", Label: "File attachments — Call"},
		{ID: "cat-lunch", Ticket: "Lunch", Description: "Break", Label: "Lunch — Break", NonWork: true},
		{ID: "cat-break", Ticket: "Break", Description: "Short break", Label: "Break — Short break", NonWork: true},
		{ID: "cat-ooo", Ticket: "OOO", Description: "Out of office", Label: "OOO — Out of office", NonWork: true},
		{ID: "cat-eod", Ticket: "EoD", Description: "End of day marker", Label: "EoD — Marker", NonWork: true},
	}
}
