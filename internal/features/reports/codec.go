package reports

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Column positions of the backing table. The order is configuration shared with
// the sheet's header row.
const (
	colReference = iota
	colName
	colContact
	colMunicipality
	colLeakType
	colLocation
	colCreatedAt
	colStatus
	colStatusUpdatedAt
	colEvidence
	columnCount
)

// Columns is the header row of the backing table.
var Columns = []string{
	"Reference", "Name", "Contact", "Municipality", "LeakType",
	"Location", "CreatedAt", "Status", "StatusUpdatedAt", "Evidence",
}

const (
	timeLayout = time.RFC3339
	// legacyTimeLayout is how rows written by the old form app look.
	legacyTimeLayout = "2006-01-02 15:04:05"
	geoPrefix        = "geo:"
	geoSeparator     = " | "
)

// Addresses never carry a bare "geo:" once written, so the coordinate suffix
// cannot be forged by address text. Each "geo" + N backslashes + ":" gains one
// backslash on write and loses it on read.
var (
	geoLiteral = regexp.MustCompile(`geo(\\*):`)
	geoEscaped = regexp.MustCompile(`geo\\(\\*):`)
)

func escapeAddress(s string) string {
	return geoLiteral.ReplaceAllString(s, `geo\${1}:`)
}

func unescapeAddress(s string) string {
	return geoEscaped.ReplaceAllString(s, `geo${1}:`)
}

func encodeRow(r *Report) []string {
	row := make([]string, columnCount)
	row[colReference] = r.Reference
	row[colName] = r.ReporterName
	row[colContact] = r.ReporterContact
	row[colMunicipality] = r.Municipality
	row[colLeakType] = string(r.Category)
	row[colLocation] = encodeLocation(r.Location)
	row[colCreatedAt] = encodeTime(r.CreatedAt)
	row[colStatus] = string(r.Status)
	if r.StatusUpdatedAt != nil {
		row[colStatusUpdatedAt] = encodeTime(*r.StatusUpdatedAt)
	}
	row[colEvidence] = encodeEvidence(r.Evidence)
	return row
}

// decodeRow never fails on a single bad cell; it only rejects rows without a reference.
func decodeRow(row []string) (*Report, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	ref := cell(colReference)
	if ref == "" {
		return nil, fmt.Errorf("row has no reference")
	}

	status, _ := ParseStatus(cell(colStatus))
	category, _ := ParseCategory(cell(colLeakType))
	r := &Report{
		Reference:       ref,
		ReporterName:    cell(colName),
		ReporterContact: cell(colContact),
		Municipality:    cell(colMunicipality),
		Category:        category,
		Location:        decodeLocation(cell(colLocation)),
		CreatedAt:       decodeTime(cell(colCreatedAt)),
		Status:          status,
		Evidence:        decodeEvidence(cell(colEvidence)),
	}
	if t := decodeTime(cell(colStatusUpdatedAt)); !t.IsZero() {
		r.StatusUpdatedAt = &t
	}
	return r, nil
}

func encodeTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Truncate(time.Second).Format(timeLayout)
}

// decodeTime returns the zero time for empty or unparseable cells.
func decodeTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(timeLayout, s); err == nil {
		return t.UTC()
	}
	if t, err := time.Parse(legacyTimeLayout, s); err == nil {
		return t.UTC()
	}
	return time.Time{}
}

func encodeLocation(l Location) string {
	addr := escapeAddress(strings.TrimSpace(l.Address))
	if l.Coordinates == nil {
		return addr
	}
	geo := geoPrefix + formatFloat(l.Coordinates.Latitude) + "," + formatFloat(l.Coordinates.Longitude)
	if addr == "" {
		return geo
	}
	return addr + geoSeparator + geo
}

func decodeLocation(s string) Location {
	addr, geo := s, ""
	if strings.HasPrefix(s, geoPrefix) {
		addr, geo = "", s
	} else if i := strings.LastIndex(s, geoSeparator+geoPrefix); i >= 0 {
		addr, geo = s[:i], s[i+len(geoSeparator):]
	}

	loc := Location{Address: unescapeAddress(strings.TrimSpace(addr))}
	if geo == "" {
		return loc
	}
	parts := strings.Split(strings.TrimPrefix(geo, geoPrefix), ",")
	if len(parts) != 2 {
		// not a coordinate after all; keep the text
		loc.Address = strings.TrimSpace(s)
		return loc
	}
	lat, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		loc.Address = strings.TrimSpace(s)
		return loc
	}
	loc.Coordinates = &Coordinates{Latitude: lat, Longitude: lng}
	return loc
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func encodeEvidence(items []string) string {
	if len(items) == 0 {
		return ""
	}
	b, err := json.Marshal(items)
	if err != nil {
		return strings.Join(items, ",")
	}
	return string(b)
}

// decodeEvidence accepts a JSON array; anything else is a single item.
func decodeEvidence(s string) []string {
	if s == "" {
		return nil
	}
	var items []string
	if err := json.Unmarshal([]byte(s), &items); err == nil {
		if len(items) == 0 {
			return nil
		}
		return items
	}
	return []string{s}
}
