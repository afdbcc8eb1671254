package service

import (
	"errors"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"yuvasabha_backend/internals/helpers/sabhadate"
)

// ErrNoAttendanceData means the scan found zero Present records for the
// requested scope, so there is nothing to report on.
var ErrNoAttendanceData = errors.New("no attendance data for the requested scope")

// PresentRecord is one Present attendance row, reduced to what the report
// needs. Day is canonical (midnight UTC).
type PresentRecord struct {
	SabhaUserID uuid.UUID
	Day         time.Time
}

// PersonInfo is a directory entry joined into the report output.
type PersonInfo struct {
	SabhaUserID uuid.UUID
	CustomID    string
	Name        string
}

type MonthlyStat struct {
	Year         int     `json:"year"`
	Month        int     `json:"month"`
	PresentCount int     `json:"present_count"`
	TotalCount   int     `json:"total_count"`
	Percentage   float64 `json:"percentage"`
}

type PersonMonthlyReport struct {
	SabhaUserID uuid.UUID     `json:"sabha_user_id"`
	CustomID    string        `json:"sabha_user_custom_id"`
	Name        string        `json:"sabha_user_name"`
	Months      []MonthlyStat `json:"months"`
}

type monthKey struct {
	year  int
	month time.Month
}

// MissingPersonIDs returns record holders absent from persons, deduplicated.
// The report covers everyone with a Present record in the scanned scope, even
// members who have since left it (moved mandal, flag cleared); the caller
// joins these IDs back to the directory before building the report.
func MissingPersonIDs(records []PresentRecord, persons []PersonInfo) []uuid.UUID {
	have := make(map[uuid.UUID]struct{}, len(persons))
	for _, p := range persons {
		have[p.SabhaUserID] = struct{}{}
	}

	var missing []uuid.UUID
	for _, r := range records {
		if _, ok := have[r.SabhaUserID]; ok {
			continue
		}
		have[r.SabhaUserID] = struct{}{}
		missing = append(missing, r.SabhaUserID)
	}
	return missing
}

// BuildMonthlyReport aggregates Present records into per-person monthly
// percentages against the count of target weekdays (Sundays) in each month.
// The month columns are the union of every month observed across all records,
// so the output is a dense matrix: every person gets a stat for every column,
// zero-filled where they never attended. Months whose calendar holds no
// target weekday report 0 percent. Rows are sorted by custom ID.
func BuildMonthlyReport(records []PresentRecord, persons []PersonInfo, target time.Weekday) ([]PersonMonthlyReport, error) {
	if len(records) == 0 {
		return nil, ErrNoAttendanceData
	}

	counts := make(map[uuid.UUID]map[monthKey]int)
	unionSet := make(map[monthKey]struct{})
	for _, r := range records {
		day := sabhadate.Normalize(r.Day)
		key := monthKey{day.Year(), day.Month()}
		unionSet[key] = struct{}{}
		if counts[r.SabhaUserID] == nil {
			counts[r.SabhaUserID] = make(map[monthKey]int)
		}
		counts[r.SabhaUserID][key]++
	}

	months := make([]monthKey, 0, len(unionSet))
	for k := range unionSet {
		months = append(months, k)
	}
	sort.Slice(months, func(i, j int) bool {
		if months[i].year != months[j].year {
			return months[i].year < months[j].year
		}
		return months[i].month < months[j].month
	})

	out := make([]PersonMonthlyReport, 0, len(persons))
	for _, p := range persons {
		row := PersonMonthlyReport{
			SabhaUserID: p.SabhaUserID,
			CustomID:    p.CustomID,
			Name:        p.Name,
			Months:      make([]MonthlyStat, 0, len(months)),
		}
		for _, mk := range months {
			present := counts[p.SabhaUserID][mk]
			total := sabhadate.WeekdayCount(mk.year, mk.month, target)

			pct := 0.0
			if total > 0 {
				pct = math.Round(float64(present)/float64(total)*100*100) / 100
			}
			row.Months = append(row.Months, MonthlyStat{
				Year:         mk.year,
				Month:        int(mk.month),
				PresentCount: present,
				TotalCount:   total,
				Percentage:   pct,
			})
		}
		out = append(out, row)
	}

	sort.Slice(out, func(i, j int) bool {
		return lessCustomID(out[i].CustomID, out[j].CustomID)
	})
	return out, nil
}

// lessCustomID orders "AB2" before "AB10" by comparing the letter prefix
// first and the numeric suffix numerically. IDs without a clean numeric
// suffix fall back to plain string order.
func lessCustomID(a, b string) bool {
	ap, an, aok := splitCustomID(a)
	bp, bn, bok := splitCustomID(b)
	if !aok || !bok {
		return a < b
	}
	if ap != bp {
		return ap < bp
	}
	return an < bn
}

func splitCustomID(id string) (prefix string, n int, ok bool) {
	i := 0
	for i < len(id) && (id[i] < '0' || id[i] > '9') {
		i++
	}
	if i == 0 || i == len(id) {
		return "", 0, false
	}
	num, err := strconv.Atoi(id[i:])
	if err != nil {
		return "", 0, false
	}
	return id[:i], num, true
}
