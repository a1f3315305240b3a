package services

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelmate-app/travelmate-backend/config"
	"github.com/travelmate-app/travelmate-backend/types"
)

func newTestEmailService(t *testing.T) (*EmailService, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	cfg := &config.EmailConfig{
		FromAddress: "trips@travelmate.app",
		FromName:    "TravelMate",
	}
	return NewEmailServiceWithRegistry(cfg, "test-api-key", reg), reg
}

func TestEmailService_RejectsIncompleteTemplateData(t *testing.T) {
	svc, reg := newTestEmailService(t)

	err := svc.SendItineraryShareEmail(context.Background(), types.EmailData{
		To:      "friend@example.com",
		Subject: "Trip itinerary: Bohol",
		TemplateData: map[string]interface{}{
			"SenderName": "Ana",
			// Destination and Days missing
		},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required template field")

	// the failure is counted before any network call
	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Equal(t, 1.0, counterValue(t, families, "travelmate_email_errors_total"))
	assert.Equal(t, 0.0, counterValue(t, families, "travelmate_emails_sent_total"))
}

func TestEmailService_TemplateRenders(t *testing.T) {
	// render the template directly; sending is covered by integration tests
	data := map[string]interface{}{
		"SenderName":  "Ana",
		"Destination": "Bohol",
		"Days": []types.DayPlan{
			{Label: "Day 1", Date: "2024-06-01", Activities: []types.Activity{
				{TimeSlot: "6:00 AM", Description: "Visit Chocolate Hills"},
			}},
		},
	}

	html, err := renderTemplate(itineraryShareTemplate, data)
	require.NoError(t, err)
	assert.Contains(t, html, "Ana shared a trip to Bohol")
	assert.Contains(t, html, "Day 1")
	assert.Contains(t, html, "Visit Chocolate Hills")
	assert.Contains(t, html, "6:00 AM")
}

func counterValue(t *testing.T, families []*dto.MetricFamily, name string) float64 {
	t.Helper()
	for _, mf := range families {
		if mf.GetName() == name {
			require.Len(t, mf.GetMetric(), 1)
			return mf.GetMetric()[0].GetCounter().GetValue()
		}
	}
	return 0
}
