package reports

import (
	"sort"
	"strings"
)

const dateLayout = "2006-01-02"

// Summarize derives dashboard counts from a snapshot. It never mutates reports.
// Reports with a zero CreatedAt are left out of the timeseries only.
func Summarize(reports []Report) Summary {
	s := Summary{
		Total:                len(reports),
		ByStatus:             make(map[Status]int),
		ByCategory:           make(map[string]int),
		ByMunicipality:       make(map[string]int),
		ByMunicipalityStatus: make(map[string]map[Status]int),
		Timeseries:           []DailyCount{},
		Locations:            []MapPoint{},
	}

	daily := make(map[string]int)
	for i := range reports {
		r := &reports[i]

		s.ByStatus[r.Status]++
		s.ByCategory[string(r.Category)]++

		municipality := strings.TrimSpace(r.Municipality)
		s.ByMunicipality[municipality]++
		if s.ByMunicipalityStatus[municipality] == nil {
			s.ByMunicipalityStatus[municipality] = make(map[Status]int)
		}
		s.ByMunicipalityStatus[municipality][r.Status]++

		if !r.CreatedAt.IsZero() {
			daily[r.CreatedAt.UTC().Format(dateLayout)]++
		}

		if c := r.Location.Coordinates; c != nil {
			s.Locations = append(s.Locations, MapPoint{
				Reference: r.Reference,
				Status:    r.Status,
				Latitude:  c.Latitude,
				Longitude: c.Longitude,
			})
		}
	}

	for date, n := range daily {
		s.Timeseries = append(s.Timeseries, DailyCount{Date: date, Count: n})
	}
	// ISO dates sort lexically
	sort.Slice(s.Timeseries, func(i, j int) bool {
		return s.Timeseries[i].Date < s.Timeseries[j].Date
	})

	return s
}
