package tools

import (
	"context"
	"fmt"
)

func (ts *Toolset) healthStatusTool() Tool {
	return Tool{
		Name: "get_health_status",
		Description: "Check if the TeslaMate system and database are running properly. " +
			"Use this to diagnose connection issues.",
		Parameters: noParams(),
		Run: func(ctx context.Context, _ string) (string, error) {
			var body struct {
				Status   string `json:"status"`
				Database string `json:"database"`
			}
			if err := ts.client.getJSON(ctx, "/api/health", nil, &body); err != nil {
				return "TeslaMate API Error: " + err.Error(), nil
			}
			if body.Database == "" {
				body.Database = "Unknown"
			}
			return fmt.Sprintf(
				"**TeslaMate System Status**\n"+
					"- API: Running\n"+
					"- Database: %s",
				body.Database,
			), nil
		},
	}
}
