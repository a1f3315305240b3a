package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/resend/resend-go/v2"

	"github.com/travelmate-app/travelmate-backend/config"
	"github.com/travelmate-app/travelmate-backend/logger"
	"github.com/travelmate-app/travelmate-backend/types"
)

type EmailMetrics struct {
	sendLatency prometheus.Histogram
	errorCount  prometheus.Counter
	sentCount   prometheus.Counter
}

// EmailService sends transactional email through Resend.
type EmailService struct {
	config  *config.EmailConfig
	client  *resend.Client
	metrics *EmailMetrics
}

func NewEmailService(cfg *config.EmailConfig, apiKey string) *EmailService {
	return NewEmailServiceWithRegistry(cfg, apiKey, prometheus.DefaultRegisterer)
}

func NewEmailServiceWithRegistry(cfg *config.EmailConfig, apiKey string, reg prometheus.Registerer) *EmailService {
	logger.GetLogger().Infow("Initializing email service",
		"from", cfg.FromAddress, "apikey", logger.MaskSensitiveString(apiKey, 4, 0))

	metrics := &EmailMetrics{
		sendLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "travelmate_email_send_duration_seconds",
			Help:    "Time taken to send emails",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10},
		}),
		errorCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "travelmate_email_errors_total",
			Help: "Total number of email sending errors",
		}),
		sentCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "travelmate_emails_sent_total",
			Help: "Total number of emails sent",
		}),
	}

	reg.MustRegister(metrics.sendLatency)
	reg.MustRegister(metrics.errorCount)
	reg.MustRegister(metrics.sentCount)

	return &EmailService{
		config:  cfg,
		client:  resend.NewClient(apiKey),
		metrics: metrics,
	}
}

// SendItineraryShareEmail emails a rendered itinerary summary to a recipient
// the plan owner chose to share with.
func (s *EmailService) SendItineraryShareEmail(ctx context.Context, data types.EmailData) error {
	startTime := time.Now()
	log := logger.GetLogger()
	defer func() {
		s.metrics.sendLatency.Observe(time.Since(startTime).Seconds())
	}()

	requiredFields := []string{"SenderName", "Destination", "Days"}
	for _, field := range requiredFields {
		if _, ok := data.TemplateData[field]; !ok {
			s.metrics.errorCount.Inc()
			err := fmt.Errorf("missing required template field: %s", field)
			log.Errorw("Invalid template data", "error", err)
			return err
		}
	}

	htmlContent, err := renderTemplate(itineraryShareTemplate, data.TemplateData)
	if err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Failed to render email template", "error", err)
		return fmt.Errorf("failed to render template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromAddress),
		To:      []string{data.To},
		Subject: data.Subject,
		Html:    htmlContent,
	}

	if _, err := s.client.Emails.Send(params); err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Failed to send email",
			"error", err,
			"to", logger.MaskEmail(data.To),
			"subject", data.Subject)
		return fmt.Errorf("email send failed: %w", err)
	}

	s.metrics.sentCount.Inc()
	log.Infow("Email sent successfully",
		"to", logger.MaskEmail(data.To),
		"subject", data.Subject)

	return nil
}

func renderTemplate(tmplText string, data any) (string, error) {
	tmpl, err := template.New("email").Parse(tmplText)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const itineraryShareTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>A Trip Itinerary Was Shared With You</title>
    <style>
        body {
            font-family: 'sans-serif';
            background-color: #f7f7f7;
            color: #333333;
            margin: 0;
            padding: 20px;
        }
        .container {
            max-width: 600px;
            margin: 20px auto;
            background-color: #ffffff;
            padding: 30px;
            border-radius: 12px;
            box-shadow: 0 4px 8px rgba(0, 0, 0, 0.05);
        }
        h1 {
            color: #0E7C66;
            font-size: 26px;
            margin-bottom: 20px;
        }
        h2 {
            font-size: 18px;
            margin: 20px 0 8px;
        }
        p {
            font-size: 15px;
            line-height: 1.6;
        }
        .activity {
            font-size: 14px;
            line-height: 1.5;
            margin: 2px 0;
        }
        .slot {
            color: #777777;
            display: inline-block;
            min-width: 70px;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>{{.SenderName}} shared a trip to {{.Destination}}</h1>
        <p>Here is the day-by-day itinerary:</p>
        {{range .Days}}
        <h2>{{.Label}}{{if .Date}} &mdash; {{.Date}}{{end}}</h2>
        {{range .Activities}}
        <p class="activity"><span class="slot">{{.TimeSlot}}</span> {{.Description}}</p>
        {{end}}
        {{end}}
    </div>
</body>
</html>`
