package tools

import (
	"context"
	"fmt"

	"teslamate-chat/internal/domain"
)

func (ts *Toolset) currentDateTool() Tool {
	return Tool{
		Name: "get_current_date",
		Description: "Get today's date and current time. ALWAYS call this FIRST before any " +
			"other function that needs dates, so you know what the current date is.",
		Parameters: noParams(),
		Run: func(_ context.Context, _ string) (string, error) {
			now := ts.now().In(ts.loc)
			_, week := now.ISOWeek()
			return fmt.Sprintf(
				"**Dagens datum:** %s\n"+
					"**Tid:** %s\n"+
					"**Veckodag:** %s\n"+
					"**Vecka:** %d\n\n"+
					"Use this date as reference for 'senaste veckan', 'denna månad', etc.",
				now.Format("2006-01-02"),
				now.Format("15:04"),
				domain.SwedishWeekday(now),
				week,
			), nil
		},
	}
}
