package tools

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"teslamate-chat/internal/domain"
)

func (ts *Toolset) drivingJournalTool() Tool {
	return Tool{
		Name: "get_driving_journal",
		Description: "Generate a Swedish driving journal (körjournal) for tax reimbursement: " +
			"per-day distances in Swedish mil and reimbursement at the configured rate. " +
			"Use this when asked about körjournal, milersättning, or reseräkning. " +
			"IMPORTANT: call get_current_date first to know today's date!",
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
			var report domain.JournalReport
			if err := ts.client.getJSON(ctx, "/api/driving-journal", params, &report); err != nil {
				return errText(err), nil
			}
			if len(report.Entries) == 0 {
				return fmt.Sprintf("No driving data found for %s to %s.",
					from.Format(dateLayout), to.Format(dateLayout)), nil
			}
			return renderJournal(report), nil
		},
	}
}

// renderJournal formats the report as a markdown table plus a summary block.
func renderJournal(report domain.JournalReport) string {
	lines := []string{
		fmt.Sprintf("**Körjournal %s — %s**\n", report.Period.Start, report.Period.End),
		"| Datum | Dag | Destination | Km | Mil | Ersättning |",
		"|-------|-----|-------------|----:|-----:|-----------:|",
	}
	for _, e := range report.Entries {
		lines = append(lines, fmt.Sprintf("| %s | %s | %s | %s | %s | %s kr |",
			e.Date, e.Weekday, truncateLabel(e.Destination, 40),
			num(e.JournalKm), num(e.Mil), num(e.ReimbursementSek)))
	}
	s := report.Summary
	lines = append(lines,
		"",
		"**Summering:**",
		fmt.Sprintf("- Antal dagar: %d", s.TotalDays),
		fmt.Sprintf("- Total sträcka: %s mil (%s km)", num(s.TotalMil), num(s.TotalKm)),
		fmt.Sprintf("- Total ersättning: %s kr", num(s.TotalReimbursementSek)),
		fmt.Sprintf("- Milersättning: %s kr/mil", num(s.RatePerMil)),
	)
	return strings.Join(lines, "\n")
}

// truncateLabel keeps long geocoded address labels from blowing up the
// table. Counts runes, not bytes; Swedish labels are not ASCII.
func truncateLabel(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
