package core

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

type (
	// Category is a reusable activity label (ticket + description) that
	// entries attach to. NonWork categories are excluded from work-only totals.
	Category struct {
		ID          string `json:"id"`
		Ticket      string `json:"ticket"`
		Description string `json:"description"`
		Label       string `json:"label"`
		NonWork     bool   `json:"nonWork"`
	}

	// Entry is a single timestamped log record. CategoryID is a reference,
	// not ownership: the category may have been deleted since, and consumers
	// must treat a dangling reference as "uncategorized". Label is a snapshot
	// of the category label at creation time.
	Entry struct {
		ID         string    `json:"id"`
		TS         time.Time `json:"tsISO"`
		RawText    string    `json:"rawText"`
		CategoryID string    `json:"categoryId"`
		Label      string    `json:"label"`
	}
)

var (
	ErrBlankText   = errors.New("blank activity text")
	ErrEmptyTicket = errors.New("empty ticket")
	ErrNotFound    = errors.New("record not found")
)

// MakeLabel derives the display label from ticket and description.
// The same derivation applies after every ticket or description edit.
func MakeLabel(ticket, description string) string {
	return ticket + " — " + description
}

// NewCategoryID returns a fresh unique category id.
func NewCategoryID() string {
	return "cat-" + uuid.NewString()
}

// NewEntryID returns a fresh unique entry id.
func NewEntryID() string {
	return "e-" + uuid.NewString()
}

// NewCategory builds a user-defined category with a derived label.
// An empty description falls back to "Custom category".
func NewCategory(ticket, description string, nonWork bool) (Category, error) {
	ticket = strings.TrimSpace(ticket)
	if ticket == "" {
		return Category{}, ErrEmptyTicket
	}
	description = strings.TrimSpace(description)
	if description == "" {
		description = "Custom category"
	}
	return Category{
		ID:          NewCategoryID(),
		Ticket:      ticket,
		Description: description,
		Label:       MakeLabel(ticket, description),
		NonWork:     nonWork,
	}, nil
}

// SortEntries orders entries ascending by timestamp. The sort is stable so
// entries sharing an instant keep their insertion order.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TS.Before(entries[j].TS)
	})
}
