package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// Destination is the canonical catalog record for a curated place.
// All upstream records are normalized into this shape once, at the catalog
// boundary; nothing downstream branches on alternate field names.
type Destination struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	City        string    `json:"city"`
	Region      string    `json:"region"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	// Budget is the curated cost estimate, kept verbatim as entered by an
	// admin. It may be a plain number ("8000") or a currency range
	// ("₱8,000 - ₱15,000"); planner.ParseNumericBudget interprets it.
	Budget    string   `json:"budget"`
	Rating    float64  `json:"rating"`
	Images    []string `json:"images"`
	CreatedBy string   `json:"createdBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RawDestination mirrors the loosely shaped records the original catalog
// provider emits: every field has historical aliases and budget may be a
// number or a formatted string.
type RawDestination struct {
	ID              string          `json:"id"`
	DestinationName string          `json:"destinationName"`
	Name            string          `json:"name"`
	CityName        string          `json:"cityName"`
	City            string          `json:"city"`
	RegionName      string          `json:"regionName"`
	Region          string          `json:"region"`
	Category        string          `json:"category"`
	Tags            []string        `json:"tags"`
	Description     string          `json:"description"`
	Budget          json.RawMessage `json:"budget"`
	EstimatedCost   json.RawMessage `json:"estimatedCost"`
	Price           json.RawMessage `json:"price"`
	Rating          float64         `json:"rating"`
	Images          []string        `json:"images"`
	ImageURL        string          `json:"imageUrl"`
}

// NormalizeDestination collapses a raw catalog record into the canonical
// Destination shape. Missing fields default to empty/zero; the first
// non-empty alias wins.
func NormalizeDestination(raw RawDestination) Destination {
	d := Destination{
		ID:          raw.ID,
		Name:        firstNonEmpty(raw.DestinationName, raw.Name),
		City:        firstNonEmpty(raw.CityName, raw.City),
		Region:      firstNonEmpty(raw.RegionName, raw.Region),
		Category:    raw.Category,
		Description: raw.Description,
		Rating:      raw.Rating,
		Images:      raw.Images,
	}

	if d.Category == "" && len(raw.Tags) > 0 {
		d.Category = raw.Tags[0]
	}
	if len(d.Images) == 0 && raw.ImageURL != "" {
		d.Images = []string{raw.ImageURL}
	}

	for _, candidate := range []json.RawMessage{raw.Budget, raw.EstimatedCost, raw.Price} {
		if s := rawToString(candidate); s != "" {
			d.Budget = s
			break
		}
	}

	return d
}

// PrimaryImage returns the first image reference, or "" when none exist.
func (d *Destination) PrimaryImage() string {
	if len(d.Images) > 0 {
		return d.Images[0]
	}
	return ""
}

// rawToString renders a raw JSON scalar (string or number) as its string form.
// Returns "" for null, objects, or unparseable input.
func rawToString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		if n == float64(int64(n)) {
			return fmt.Sprintf("%d", int64(n))
		}
		return fmt.Sprintf("%g", n)
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// DestinationUpdate carries the mutable fields of a catalog entry for admin edits.
type DestinationUpdate struct {
	Name        *string   `json:"name,omitempty"`
	City        *string   `json:"city,omitempty"`
	Region      *string   `json:"region,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Description *string   `json:"description,omitempty"`
	Budget      *string   `json:"budget,omitempty"`
	Rating      *float64  `json:"rating,omitempty"`
	Images      *[]string `json:"images,omitempty"`
}

// DestinationFilter narrows catalog listings.
type DestinationFilter struct {
	Region   string `form:"region"`
	Category string `form:"category"`
	Query    string `form:"q"`
}
