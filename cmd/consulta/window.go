package main

import (
	"errors"
	"fmt"
	"time"

	"consultapje/internal/models"
)

var errInvalidWindow = errors.New("invalid date window")

// resolveWindow turns the date flags into a query window and report label.
// With no flags the window is [today, today].
func resolveWindow(date, start, end string, now time.Time) (models.QueryWindow, string, error) {
	if date == "" {
		date = now.Format(models.DateLayout)
	}

	if start == "" {
		start = date
	}

	if end == "" {
		end = date
	}

	s, err := time.Parse(models.DateLayout, start)
	if err != nil {
		return models.QueryWindow{}, "", fmt.Errorf("%w: start %q: %w", errInvalidWindow, start, err)
	}

	e, err := time.Parse(models.DateLayout, end)
	if err != nil {
		return models.QueryWindow{}, "", fmt.Errorf("%w: end %q: %w", errInvalidWindow, end, err)
	}

	if e.Before(s) {
		return models.QueryWindow{}, "", fmt.Errorf("%w: end %s before start %s", errInvalidWindow, end, start)
	}

	label := start
	if end != start {
		label = start + "_" + end
	}

	return models.QueryWindow{Start: start, End: end}, label, nil
}
