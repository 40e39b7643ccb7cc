package tools

import (
	"context"
	"fmt"
	"strings"

	"teslamate-chat/internal/domain"
)

func (ts *Toolset) batteryStatusTool() Tool {
	return Tool{
		Name: "get_battery_status",
		Description: "Get current battery level, range estimates, and battery heater status. " +
			"Use this when asked about battery, charge level, range, or how far the car can drive.",
		Parameters: noParams(),
		Run: func(ctx context.Context, _ string) (string, error) {
			var status domain.BatteryStatus
			if err := ts.client.getJSON(ctx, "/api/battery-status", nil, &status); err != nil {
				return errText(err), nil
			}

			heater := "Off"
			if status.BatteryHeaterOn {
				heater = "On"
			}
			updated := "N/A"
			if status.LastUpdated != nil {
				updated = status.LastUpdated.In(ts.loc).Format("2006-01-02 15:04")
			}

			lines := []string{
				"**Battery Status**",
				fmt.Sprintf("- Battery Level: %s%%", orNA(status.BatteryLevel, intStr)),
				fmt.Sprintf("- Usable Battery: %s%%", orNA(status.UsableBatteryLevel, intStr)),
				fmt.Sprintf("- Rated Range: %s km", orNA(status.RatedRangeKm, float1Str)),
				fmt.Sprintf("- Ideal Range: %s km", orNA(status.IdealRangeKm, float1Str)),
				fmt.Sprintf("- Estimated Range: %s km", orNA(status.EstimatedRangeKm, float1Str)),
				fmt.Sprintf("- Battery Heater: %s", heater),
				fmt.Sprintf("- Car: %s (%s)", status.CarName, status.CarModel),
				fmt.Sprintf("- Last Updated: %s", updated),
			}
			return strings.Join(lines, "\n"), nil
		},
	}
}
