package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"teslamate-chat/internal/dateparse"
	"teslamate-chat/internal/domain"
)

const (
	kmPerMile       = 1.60934
	maxDrivesListed = 50
	defaultListed   = 10
	dateLayout      = "2006-01-02"
)

func (ts *Toolset) totalDistanceTool() Tool {
	return Tool{
		Name: "get_total_distance",
		Description: "Get the total distance the car has driven since tracking started, " +
			"plus the total number of recorded trips.",
		Parameters: noParams(),
		Run: func(ctx context.Context, _ string) (string, error) {
			var summary domain.DistanceSummary
			if err := ts.client.getJSON(ctx, "/api/total-distance", nil, &summary); err != nil {
				return errText(err), nil
			}
			km := summary.TotalDistance
			return fmt.Sprintf(
				"**Total Distance**\n"+
					"- %s km (%s Swedish mil / %s miles)\n"+
					"- Total recorded trips: %d",
				num1(km), num1(km/domain.KmPerMil), num1(km/kmPerMile), summary.TotalTrips,
			), nil
		},
	}
}

func (ts *Toolset) recentDrivesTool() Tool {
	return Tool{
		Name: "get_recent_drives",
		Description: "Get the most recent drives with start/end locations, distance, and " +
			"duration. Use this when asked about recent trips or where the car has been lately.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"limit": map[string]any{
					"type":        "integer",
					"description": "Number of recent drives to show (default 10, max 50)",
				},
			},
		},
		Run: func(ctx context.Context, args string) (string, error) {
			var in struct {
				Limit *int `json:"limit"`
			}
			if err := parseArgs(args, &in); err != nil {
				return "", err
			}
			limit := defaultListed
			if in.Limit != nil {
				limit = *in.Limit
			}
			if limit > maxDrivesListed {
				limit = maxDrivesListed
			}

			params := url.Values{"limit": {strconv.Itoa(limit)}}
			var body domain.RecentDrives
			if err := ts.client.getJSON(ctx, "/api/recent-drives", params, &body); err != nil {
				return errText(err), nil
			}
			if len(body.Drives) == 0 {
				return "No recent drives found.", nil
			}

			lines := []string{fmt.Sprintf("**Last %d Drives**\n", len(body.Drives))}
			for i, d := range body.Drives {
				lines = append(lines,
					fmt.Sprintf("%d. **%s** — %s km, %d min",
						i+1, d.StartDate.In(ts.loc).Format("2006-01-02 15:04"),
						float1Str(d.DistanceKm), d.DurationMin),
					fmt.Sprintf("   %s → %s", d.StartLocation, d.EndLocation),
				)
			}
			return strings.Join(lines, "\n"), nil
		},
	}
}

func (ts *Toolset) drivesByDateTool() Tool {
	return Tool{
		Name: "get_drives_by_date",
		Description: "Get all drives within a date range, with locations, distance, and " +
			"duration per drive. IMPORTANT: call get_current_date first to know today's date!",
		Parameters: dateRangeParams(),
		Run: func(ctx context.Context, args string) (string, error) {
			from, to, err := ts.resolveRange(args)
			if err != nil {
				return "", err
			}

			params := url.Values{
				"start_date": {from.Format(dateLayout)},
				"end_date":   {to.Format(dateLayout)},
			}
			var body domain.DriveRange
			if err := ts.client.getJSON(ctx, "/api/drives-by-date", params, &body); err != nil {
				return errText(err), nil
			}
			if len(body.Drives) == 0 {
				return fmt.Sprintf("No drives found between %s and %s.", body.StartDate, body.EndDate), nil
			}

			lines := []string{
				fmt.Sprintf("**Drives %s to %s**", body.StartDate, body.EndDate),
				fmt.Sprintf("Total: %d drives, %s km, %d min\n",
					body.Count, num(body.TotalDistanceKm), body.TotalDurationMin),
			}
			for i, d := range body.Drives {
				lines = append(lines, fmt.Sprintf("%d. **%s** — %s km, %d min: %s → %s",
					i+1, d.StartDate.In(ts.loc).Format("15:04"),
					float1Str(d.DistanceKm), d.DurationMin, d.StartLocation, d.EndLocation))
			}
			return strings.Join(lines, "\n"), nil
		},
	}
}

// dateRangeParams is the shared schema for tools taking a phrase-friendly
// date range.
func dateRangeParams() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"start_date": map[string]any{
				"type": "string",
				"description": "Start date as YYYY-MM-DD, or a relative term like " +
					"'senaste veckan', 'denna månad', 'igår'. Defaults to 7 days ago.",
			},
			"end_date": map[string]any{
				"type":        "string",
				"description": "End date as YYYY-MM-DD. Defaults to today.",
			},
		},
	}
}

// resolveRange turns the tool's date arguments into a concrete [from, to]
// day pair. A single phrase like "förra månaden" supplies both ends; an
// explicit end_date overrides the phrase's end.
func (ts *Toolset) resolveRange(args string) (from, to time.Time, err error) {
	var in struct {
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	}
	if err := parseArgs(args, &in); err != nil {
		return time.Time{}, time.Time{}, err
	}

	today := ts.today()
	from = today.AddDate(0, 0, -7)
	to = today

	if s := strings.TrimSpace(in.StartDate); s != "" {
		rs, re, err := dateparse.Resolve(s, today)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from, to = rs, re
	}
	if e := strings.TrimSpace(in.EndDate); e != "" {
		_, re, err := dateparse.Resolve(e, today)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = re
	}
	return from, to, nil
}

// parseArgs decodes the model-supplied JSON argument object. An empty or
// whitespace-only string means no arguments.
func parseArgs(args string, out any) error {
	trimmed := strings.TrimSpace(args)
	if trimmed == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(trimmed), out); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}
