package reports

import (
	"strings"
	"time"
)

// Status is the lifecycle state of a report.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
	StatusRejected   Status = "Rejected"
)

// Statuses lists the canonical states in display order.
var Statuses = []Status{StatusPending, StatusInProgress, StatusResolved, StatusRejected}

// ParseStatus matches s case-insensitively against the canonical states. An empty
// cell is Pending (rows written before statuses existed). Unknown values come back
// verbatim with ok=false so they still show up in counts.
func ParseStatus(s string) (Status, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return StatusPending, true
	}
	for _, st := range Statuses {
		if strings.EqualFold(s, string(st)) {
			return st, true
		}
	}
	return Status(s), false
}

// Terminal reports whether no further transition is allowed out of s.
func (s Status) Terminal() bool {
	return s == StatusResolved || s == StatusRejected
}

// Category classifies the leak.
type Category string

const (
	CategoryBurstPipe      Category = "Burst Pipe"
	CategoryLeakage        Category = "Leakage"
	CategorySewageOverflow Category = "Sewage Overflow"
	CategoryOther          Category = "Other"
)

var Categories = []Category{CategoryBurstPipe, CategoryLeakage, CategorySewageOverflow, CategoryOther}

// ParseCategory matches s case-insensitively. Empty input is Other.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CategoryOther, true
	}
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) {
			return c, true
		}
	}
	return Category(s), false
}

type Coordinates struct {
	Latitude  float64 `json:"latitude" example:"-26.2041"`
	Longitude float64 `json:"longitude" example:"28.0473"`
}

// Location holds a free-text address, a coordinate pair, or both.
type Location struct {
	Address     string       `json:"address,omitempty" example:"123 Main Rd, Soweto"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

func (l Location) Empty() bool {
	return strings.TrimSpace(l.Address) == "" && l.Coordinates == nil
}

// Report is one citizen leak report.
// @Description Leak report as stored in the backing table
type Report struct {
	Reference       string     `json:"reference" example:"4A9F2CDE"`
	ReporterName    string     `json:"reporterName" example:"Thandi Nkosi"`
	ReporterContact string     `json:"reporterContact" example:"thandi@example.com"`
	Municipality    string     `json:"municipality" example:"City of Johannesburg"`
	Category        Category   `json:"category" example:"Burst Pipe"`
	Location        Location   `json:"location"`
	CreatedAt       time.Time  `json:"createdAt" example:"2025-03-01T10:00:00Z"`
	Status          Status     `json:"status" example:"Pending"`
	StatusUpdatedAt *time.Time `json:"statusUpdatedAt,omitempty" example:"2025-03-02T08:30:00Z"`
	Evidence        []string   `json:"evidence,omitempty"`
}

// PublicReport is what a citizen sees when checking a reference: no attribution fields.
type PublicReport struct {
	Reference       string     `json:"reference"`
	Municipality    string     `json:"municipality"`
	Category        Category   `json:"category"`
	Location        Location   `json:"location"`
	CreatedAt       time.Time  `json:"createdAt"`
	Status          Status     `json:"status"`
	StatusUpdatedAt *time.Time `json:"statusUpdatedAt,omitempty"`
	Evidence        []string   `json:"evidence,omitempty"`
}

func (r *Report) Public() PublicReport {
	return PublicReport{
		Reference:       r.Reference,
		Municipality:    r.Municipality,
		Category:        r.Category,
		Location:        r.Location,
		CreatedAt:       r.CreatedAt,
		Status:          r.Status,
		StatusUpdatedAt: r.StatusUpdatedAt,
		Evidence:        r.Evidence,
	}
}

// RowHandle identifies the row a report was read from, for one read-then-write.
type RowHandle struct {
	row       int
	reference string
}

// DailyCount is one point of the reports-over-time series.
type DailyCount struct {
	Date  string `json:"date" example:"2025-03-01"`
	Count int    `json:"count" example:"4"`
}

// MapPoint is a geolocated report for the dashboard map.
type MapPoint struct {
	Reference string  `json:"reference"`
	Status    Status  `json:"status"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Summary is the dashboard view derived from one snapshot.
type Summary struct {
	Total                int                       `json:"total" example:"4"`
	ByStatus             map[Status]int            `json:"byStatus"`
	ByCategory           map[string]int            `json:"byCategory"`
	ByMunicipality       map[string]int            `json:"byMunicipality"`
	ByMunicipalityStatus map[string]map[Status]int `json:"byMunicipalityStatus"`
	Timeseries           []DailyCount              `json:"timeseries"`
	Locations            []MapPoint                `json:"locations"`
}

// SubmitRequest carries the citizen form fields.
type SubmitRequest struct {
	Name         string   `json:"name" form:"name" validate:"required,max=150" example:"Thandi Nkosi"`
	Contact      string   `json:"contact" form:"contact" validate:"required,email,max=200" example:"thandi@example.com"`
	Municipality string   `json:"municipality" form:"municipality" validate:"max=100" example:"City of Johannesburg"`
	Category     string   `json:"category" form:"category" validate:"leak_category" example:"Burst Pipe"`
	Address      string   `json:"address" form:"address" validate:"required_without_all=Latitude Longitude,max=300" example:"123 Main Rd, Soweto"`
	Latitude     *float64 `json:"latitude" form:"latitude" validate:"required_with=Longitude,omitempty,latitude" example:"-26.2041"`
	Longitude    *float64 `json:"longitude" form:"longitude" validate:"required_with=Latitude,omitempty,longitude" example:"28.0473"`
	Evidence     []string `json:"evidence" form:"-" validate:"max=10,dive,url"`
}

// ListFilter narrows the admin report list.
type ListFilter struct {
	Status       Status
	Municipality string
	Page         int
	Limit        int
}
