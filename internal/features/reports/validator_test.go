package reports

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fields(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	out := make(map[string]string, len(verr.Fields))
	for _, f := range verr.Fields {
		out[f.Field] = f.Message
	}
	return out
}

func TestValidateSubmission_Valid(t *testing.T) {
	tests := []struct {
		name string
		req  SubmitRequest
	}{
		{"address only", SubmitRequest{Name: "Thandi", Contact: "t@example.com", Address: "1 Main Rd"}},
		{"coordinates only", SubmitRequest{Name: "Thandi", Contact: "t@example.com", Latitude: floatPtr(-26.2), Longitude: floatPtr(28.0)}},
		{"full", SubmitRequest{
			Name: "Thandi", Contact: "t@example.com", Municipality: "Tshwane", Category: "burst pipe",
			Address: "1 Main Rd", Evidence: []string{"https://example.com/a.jpg"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, ValidateSubmission(&tt.req))
		})
	}
}

func TestValidateSubmission_ReportsEveryField(t *testing.T) {
	err := ValidateSubmission(&SubmitRequest{Name: "", Contact: "not-an-email", Address: ""})
	require.ErrorIs(t, err, ErrValidation)

	got := fields(t, err)
	assert.Len(t, got, 3)
	assert.Contains(t, got, "name")
	assert.Contains(t, got, "contact")
	assert.Contains(t, got, "address")
}

func TestValidateSubmission_Invalid(t *testing.T) {
	base := func() SubmitRequest {
		return SubmitRequest{Name: "Thandi", Contact: "t@example.com", Address: "1 Main Rd"}
	}

	tests := []struct {
		name   string
		mutate func(*SubmitRequest)
		field  string
	}{
		{"unknown category", func(r *SubmitRequest) { r.Category = "Flood" }, "category"},
		{"latitude without longitude", func(r *SubmitRequest) { r.Latitude = floatPtr(10) }, "longitude"},
		{"latitude out of range", func(r *SubmitRequest) { r.Latitude, r.Longitude = floatPtr(95), floatPtr(10) }, "latitude"},
		{"longitude out of range", func(r *SubmitRequest) { r.Latitude, r.Longitude = floatPtr(10), floatPtr(200) }, "longitude"},
		{"evidence not a url", func(r *SubmitRequest) { r.Evidence = []string{"photo.jpg"} }, "evidence"},
		{"too much evidence", func(r *SubmitRequest) {
			for i := 0; i < 11; i++ {
				r.Evidence = append(r.Evidence, "https://example.com/x.jpg")
			}
		}, "evidence"},
		{"name too long", func(r *SubmitRequest) { r.Name = strings.Repeat("a", 151) }, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base()
			tt.mutate(&req)
			got := fields(t, ValidateSubmission(&req))
			assert.Contains(t, got, tt.field)
		})
	}
}
