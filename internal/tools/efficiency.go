package tools

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"teslamate-chat/internal/domain"
)

func (ts *Toolset) efficiencyTool() Tool {
	return Tool{
		Name: "get_efficiency",
		Description: "Get energy efficiency statistics: Wh/km and kWh/100km averages. " +
			"Use this when asked how much electricity the car uses per kilometer.",
		Parameters: lookbackParams(),
		Run: func(ctx context.Context, args string) (string, error) {
			days, err := parseDays(args)
			if err != nil {
				return "", err
			}

			params := url.Values{"days": {strconv.Itoa(days)}}
			var summary domain.EfficiencySummary
			if err := ts.client.getJSON(ctx, "/api/efficiency", params, &summary); err != nil {
				return errText(err), nil
			}
			return fmt.Sprintf(
				"**Efficiency (last %d days)**\n"+
					"- Average: %s Wh/km\n"+
					"- Average: %s kWh/100km\n"+
					"- Total Distance: %s km\n"+
					"- Trips Analyzed: %d",
				days, num(summary.AvgWhPerKm), num(summary.AvgKwhPer100Km),
				num(summary.TotalDistanceKm), summary.TripCount,
			), nil
		},
	}
}
