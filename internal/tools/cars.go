package tools

import (
	"context"
	"fmt"
	"strings"

	"teslamate-chat/internal/domain"
)

func (ts *Toolset) carInfoTool() Tool {
	return Tool{
		Name: "get_car_info",
		Description: "Get information about the Tesla car: name, model, VIN, and " +
			"efficiency rating. Use this when asked about the car itself or general vehicle info.",
		Parameters: noParams(),
		Run: func(ctx context.Context, _ string) (string, error) {
			var body struct {
				Cars []domain.Car `json:"cars"`
			}
			if err := ts.client.getJSON(ctx, "/api/cars", nil, &body); err != nil {
				return errText(err), nil
			}
			if len(body.Cars) == 0 {
				return "No cars found in TeslaMate.", nil
			}

			var lines []string
			for _, car := range body.Cars {
				lines = append(lines,
					fmt.Sprintf("**%s**", orDefault(car.Name, "Unknown")),
					fmt.Sprintf("- Model: Tesla %s", orDefault(car.Model, "Unknown")),
				)
				if car.TrimBadging != "" {
					lines = append(lines, fmt.Sprintf("- Trim: %s", car.TrimBadging))
				}
				lines = append(lines,
					fmt.Sprintf("- VIN: %s", orDefault(car.VIN, "Unknown")),
					fmt.Sprintf("- Efficiency: %s kWh/km", orNA(car.Efficiency, num)),
					fmt.Sprintf("- Added: %s", car.InsertedAt.Format("2006-01-02")),
				)
			}
			return strings.Join(lines, "\n"), nil
		},
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
