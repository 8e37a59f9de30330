// Package readmodel builds the date-grouped dashboard projection from a flat
// list of caller records.
package readmodel

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/voicedeck/call-dashboard-api/models"
)

// DateLabel buckets a timestamp relative to now: "Today", "Yesterday", or
// the weekday name for anything older. Labels are recomputed on every read,
// they are never stored durably.
func DateLabel(t, now time.Time) string {
	day := func(x time.Time) time.Time {
		y, m, d := x.In(now.Location()).Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	}
	today := day(now)
	input := day(t)

	switch {
	case input.Equal(today):
		return "Today"
	case input.Equal(today.AddDate(0, 0, -1)):
		return "Yesterday"
	}
	return input.Weekday().String()
}

// DisplayTime renders the localized clock string shown in the list
func DisplayTime(t time.Time) string {
	return t.Format("3:04 PM")
}

// Title synthesizes the list title for a caller, falling back from the
// issue summary to the issue type to a generic meeting request
func Title(c models.Caller) string {
	issue := c.IssueSummary
	if issue == "" {
		issue = c.IssueType
	}
	if issue == "" {
		issue = "Meeting Request"
	}
	return fmt.Sprintf("%s - %s", c.CallerName, issue)
}

// Subtitle resolves the display category for a caller
func Subtitle(c models.Caller) string {
	if c.Subtitle != "" {
		return c.Subtitle
	}
	if c.IssueType != "" {
		return c.IssueType
	}
	return "General Inquiry"
}

// Build transforms the flat caller list into the grouped dashboard view.
// Grouping is a partition over DateLabel. "Today" sorts first, then
// "Yesterday", then remaining labels by their most recent timeRequested.
// Within a group the source order is preserved.
func Build(callers []models.Caller, now time.Time) models.DashboardData {
	groups := make(map[string][]models.ConversationItem)
	latest := make(map[string]time.Time)
	all := make([]models.Caller, 0, len(callers))

	for _, c := range callers {
		c.DateLabel = DateLabel(c.TimeRequested, now)
		c.DisplayTime = DisplayTime(c.TimeRequested)
		c.Subtitle = Subtitle(c)
		if !models.ValidMeetingDuration(c.MeetingDuration) {
			// drop bogus durations so the list never renders an unknown badge
			c.MeetingDuration = 0
		}
		all = append(all, c)

		caller := c
		groups[c.DateLabel] = append(groups[c.DateLabel], models.ConversationItem{
			ID:              strconv.Itoa(c.ID),
			Title:           Title(c),
			Subtitle:        c.Subtitle,
			Time:            c.DisplayTime,
			MeetingDuration: c.MeetingDuration,
			Urgency:         c.Urgency,
			FullData:        &caller,
		})
		if c.TimeRequested.After(latest[c.DateLabel]) {
			latest[c.DateLabel] = c.TimeRequested
		}
	}

	order := make([]string, 0, len(groups))
	for label := range groups {
		if label != "Today" && label != "Yesterday" {
			order = append(order, label)
		}
	}
	sort.Slice(order, func(i, j int) bool {
		return latest[order[i]].After(latest[order[j]])
	})
	if _, ok := groups["Yesterday"]; ok {
		order = append([]string{"Yesterday"}, order...)
	}
	if _, ok := groups["Today"]; ok {
		order = append([]string{"Today"}, order...)
	}

	return models.DashboardData{
		ConversationsByDate: groups,
		DateOrder:           order,
		AllCallers:          all,
		Total:               len(all),
	}
}
