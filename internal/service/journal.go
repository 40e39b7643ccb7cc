package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"teslamate-chat/internal/domain"
	"teslamate-chat/internal/repo"
)

// dateLayout is the calendar-day format used throughout the API.
const dateLayout = "2006-01-02"

// maxDistinctDestinations is the threshold above which a day's destination
// collapses to the "Multiple stops" label.
const maxDistinctDestinations = 3

// JournalOptions parameterizes BuildJournalReport.
type JournalOptions struct {
	// Start and End bound the report period (inclusive calendar days).
	// They only label the report; the caller selects which drives go in.
	Start, End time.Time

	// Location is the vehicle's local time zone used to partition drives
	// into calendar days. Defaults to UTC when nil.
	Location *time.Location

	// PaddingKm is added once per day that has at least one valid drive,
	// approximating unlogged movement. Must not be negative.
	PaddingKm float64

	// RatePerMil is the reimbursement rate in SEK per Swedish mil.
	RatePerMil float64
}

// JournalService produces driving journal reports from the drives table.
type JournalService struct {
	drives     repo.DriveRepo
	location   *time.Location
	paddingKm  float64
	ratePerMil float64
}

// NewJournalService constructs a JournalService.
// location, paddingKm, and ratePerMil are the configured defaults; requests
// may override the last two per call.
func NewJournalService(r repo.DriveRepo, location *time.Location, paddingKm, ratePerMil float64) *JournalService {
	return &JournalService{drives: r, location: location, paddingKm: paddingKm, ratePerMil: ratePerMil}
}

// Report fetches all drives in the inclusive range [from, to] and builds the
// journal. rate and padding override the configured defaults when non-nil.
// Returns domain.ErrValidation for an inverted range or negative overrides.
// An empty range yields a zero-day report, not an error.
func (s *JournalService) Report(ctx context.Context, carID *int, from, to time.Time, rate, padding *float64) (domain.JournalReport, error) {
	if to.Before(from) {
		return domain.JournalReport{}, fmt.Errorf("%w: end_date must not be before start_date", domain.ErrValidation)
	}

	opts := JournalOptions{
		Start:      from,
		End:        to,
		Location:   s.location,
		PaddingKm:  s.paddingKm,
		RatePerMil: s.ratePerMil,
	}
	if rate != nil {
		if *rate < 0 {
			return domain.JournalReport{}, fmt.Errorf("%w: rate_per_mil must not be negative", domain.ErrValidation)
		}
		opts.RatePerMil = *rate
	}
	if padding != nil {
		if *padding < 0 {
			return domain.JournalReport{}, fmt.Errorf("%w: padding_km must not be negative", domain.ErrValidation)
		}
		opts.PaddingKm = *padding
	}

	drives, err := s.drives.ByDateRange(ctx, carID, from, to.AddDate(0, 0, 1))
	if err != nil {
		return domain.JournalReport{}, fmt.Errorf("service.JournalService.Report: %w", err)
	}

	return BuildJournalReport(drives, opts), nil
}

// BuildJournalReport transforms a flat list of drives into the daily journal.
//
// Invariants it maintains:
//   - every valid drive lands in exactly one day bucket, keyed by the local
//     calendar date of its start timestamp;
//   - the range total equals the sum of drive distances plus padding for
//     each day that has at least one valid drive;
//   - reimbursement is (total_km / 10) × rate; rounding happens only on the
//     rendered values, so totals never drift more than a cent from the sum
//     of the day entries.
//
// Drives whose end timestamp precedes their start are excluded from all
// totals and reported in Anomalies.
func BuildJournalReport(drives []domain.Drive, opts JournalOptions) domain.JournalReport {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	byDay := make(map[string][]domain.Drive)
	var anomalies []domain.DriveAnomaly
	for _, d := range drives {
		if d.EndDate != nil && d.EndDate.Before(d.StartDate) {
			anomalies = append(anomalies, domain.DriveAnomaly{
				DriveID: d.ID,
				Reason:  "end timestamp before start timestamp",
			})
			continue
		}
		key := d.StartDate.In(loc).Format(dateLayout)
		byDay[key] = append(byDay[key], d)
	}

	days := make([]string, 0, len(byDay))
	for key := range byDay {
		days = append(days, key)
	}
	sort.Strings(days)

	entries := make([]domain.JournalEntry, 0, len(days))
	var totalJournalKm float64
	for _, key := range days {
		dayDrives := byDay[key]
		sort.Slice(dayDrives, func(i, j int) bool {
			return dayDrives[i].StartDate.Before(dayDrives[j].StartDate)
		})

		var drivenKm float64
		for _, d := range dayDrives {
			drivenKm += d.DistanceKm
		}
		journalKm := drivenKm + opts.PaddingKm
		mil := journalKm / domain.KmPerMil

		date, _ := time.ParseInLocation(dateLayout, key, loc)
		entries = append(entries, domain.JournalEntry{
			Date:             key,
			Weekday:          domain.SwedishWeekday(date),
			Start:            dayDrives[0].StartLocation,
			Destination:      inferDestination(dayDrives),
			Purpose:          domain.PurposeBusinessTrip,
			DrivenKm:         round2(drivenKm),
			JournalKm:        round2(journalKm),
			Mil:              round2(mil),
			ReimbursementSek: round2(mil * opts.RatePerMil),
			NumTrips:         len(dayDrives),
			Drives:           dayDrives,
		})
		totalJournalKm += journalKm
	}

	totalMil := totalJournalKm / domain.KmPerMil
	report := domain.JournalReport{
		Period: domain.Period{
			Start: opts.Start.Format(dateLayout),
			End:   opts.End.Format(dateLayout),
		},
		Entries: entries,
		Summary: domain.JournalSummary{
			TotalDays:             len(entries),
			TotalMil:              round2(totalMil),
			TotalKm:               round2(totalJournalKm),
			TotalReimbursementSek: round2(totalMil * opts.RatePerMil),
			RatePerMil:            opts.RatePerMil,
			PaddingKmPerDay:       opts.PaddingKm,
		},
		Anomalies: anomalies,
	}
	return report
}

// inferDestination picks the day's destination label: the end location of
// the longest drive that ends somewhere known. Falls back to MultipleStops
// when no drive has a known end, or the day ends in more than
// maxDistinctDestinations distinct places.
func inferDestination(dayDrives []domain.Drive) string {
	distinct := make(map[string]struct{})
	best := ""
	bestKm := -1.0
	for _, d := range dayDrives {
		if d.EndLocation == "" || d.EndLocation == domain.UnknownLocation {
			continue
		}
		distinct[d.EndLocation] = struct{}{}
		if d.DistanceKm > bestKm {
			best = d.EndLocation
			bestKm = d.DistanceKm
		}
	}
	if best == "" || len(distinct) > maxDistinctDestinations {
		return domain.MultipleStops
	}
	return best
}

// round2 rounds to two decimals for rendered distances and currency.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
