package http

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"timelog/internal/core"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// generateRequestID creates a unique request ID for tracing.
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// parseTimestamp reads an RFC 3339 timestamp, defaulting to now when absent.
func parseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Now(), nil
	}
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", value, err)
	}
	return ts, nil
}

// parseDateParam reads a YYYY-MM-DD query value in local time, defaulting to
// today when absent.
func parseDateParam(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Now(), nil
	}
	d, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return d, nil
}

// parseRangeUnit maps a range query value onto a unit, defaulting to day.
func parseRangeUnit(value string) (core.RangeUnit, error) {
	switch strings.TrimSpace(value) {
	case "", "day":
		return core.UnitDay, nil
	case "week":
		return core.UnitWeek, nil
	case "month":
		return core.UnitMonth, nil
	}
	return "", fmt.Errorf("unknown range %q", value)
}

// parseTotalsFilter maps a view query value onto a filter, defaulting to work.
func parseTotalsFilter(value string) (core.TotalsFilter, error) {
	switch strings.TrimSpace(value) {
	case "", "work":
		return core.FilterWork, nil
	case "all":
		return core.FilterAll, nil
	}
	return "", fmt.Errorf("unknown view %q", value)
}

// parseLimit reads a positive integer query value, 0 meaning "use default".
func parseLimit(value string) int {
	v := strings.TrimSpace(value)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
