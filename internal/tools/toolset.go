package tools

import (
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// Toolset binds the API client and clock to the tool handlers.
type Toolset struct {
	client *Client
	loc    *time.Location

	// now is injectable so date defaults are testable.
	now func() time.Time
}

func NewToolset(client *Client, loc *time.Location) *Toolset {
	if loc == nil {
		loc = time.UTC
	}
	return &Toolset{
		client: client,
		loc:    loc,
		now:    time.Now,
	}
}

// Tools returns every tool in the order a model should see them.
// get_current_date comes first: the date-taking tools tell the model to
// call it before supplying relative phrases.
func (ts *Toolset) Tools() []Tool {
	return []Tool{
		ts.currentDateTool(),
		ts.carInfoTool(),
		ts.batteryStatusTool(),
		ts.totalDistanceTool(),
		ts.chargingStatsTool(),
		ts.recentDrivesTool(),
		ts.drivesByDateTool(),
		ts.drivingJournalTool(),
		ts.efficiencyTool(),
		ts.healthStatusTool(),
	}
}

// NewDefaultRegistry builds a registry with the full toolset registered.
func NewDefaultRegistry(log *slog.Logger, client *Client, loc *time.Location) *Registry {
	r := NewRegistry(log)
	for _, t := range NewToolset(client, loc).Tools() {
		r.Register(t)
	}
	return r
}

// today returns the current date at midnight in the toolset's zone.
func (ts *Toolset) today() time.Time {
	now := ts.now().In(ts.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, ts.loc)
}

// errText renders an upstream failure python-requests style, as tool output
// rather than a Go error, so the model always receives text.
func errText(err error) string {
	return "Error: " + err.Error()
}

// num renders a float the way it appears in the JSON body: no trailing
// zeros, no forced precision.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// num1 renders a float with one decimal and thousands separators, e.g.
// 12345.67 -> "12,345.7".
func num1(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	intPart, frac, _ := strings.Cut(s, ".")
	neg := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}
	return b.String() + "." + frac
}

// orNA renders optional readings; TeslaMate leaves many columns null until
// the car reports them.
func orNA[T any](p *T, format func(T) string) string {
	if p == nil {
		return "N/A"
	}
	return format(*p)
}

func intStr(v int) string { return strconv.Itoa(v) }

func float1Str(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) }

func noParams() map[string]any {
	return map[string]any{"type": "object", "properties": map[string]any{}}
}
