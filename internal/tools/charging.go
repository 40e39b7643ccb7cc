package tools

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"teslamate-chat/internal/domain"
)

const defaultLookbackDays = 30

// lookbackParams is the shared schema for tools taking a days window.
func lookbackParams() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"days": map[string]any{
				"type":        "integer",
				"description": "Number of days to look back (default 30)",
			},
		},
	}
}

func parseDays(args string) (int, error) {
	var in struct {
		Days *int `json:"days"`
	}
	if err := parseArgs(args, &in); err != nil {
		return 0, err
	}
	if in.Days == nil {
		return defaultLookbackDays, nil
	}
	return *in.Days, nil
}

func (ts *Toolset) chargingStatsTool() Tool {
	return Tool{
		Name: "get_charging_stats",
		Description: "Get charging statistics for a period: sessions, energy, charging " +
			"time, and cost. Use this when asked about charging or electricity usage.",
		Parameters: lookbackParams(),
		Run: func(ctx context.Context, args string) (string, error) {
			days, err := parseDays(args)
			if err != nil {
				return "", err
			}

			params := url.Values{"days": {strconv.Itoa(days)}}
			var stats domain.ChargingStats
			if err := ts.client.getJSON(ctx, "/api/charging-stats", params, &stats); err != nil {
				return errText(err), nil
			}
			return fmt.Sprintf(
				"**Charging Statistics (last %d days)**\n"+
					"- Sessions: %d\n"+
					"- Total Energy: %s kWh\n"+
					"- Avg per Session: %s kWh\n"+
					"- Total Charging Time: %s hours\n"+
					"- Total Cost: %s SEK",
				days, stats.Sessions, num(stats.TotalEnergyKwh), num(stats.AvgEnergyKwh),
				num(stats.TotalChargingHrs), num(stats.TotalCost),
			), nil
		},
	}
}
