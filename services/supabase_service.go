package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/travelmate-app/travelmate-backend/logger"
)

// SupabaseService wraps the Supabase admin REST surface the app needs.
// Regular auth (token verification, refresh) happens elsewhere; this service
// only performs privileged operations with the service key.
type SupabaseService struct {
	supabaseURL string
	serviceKey  string
	httpClient  *http.Client
	logger      *zap.SugaredLogger
	isEnabled   bool
}

// SupabaseServiceConfig contains configuration for the Supabase service.
type SupabaseServiceConfig struct {
	IsEnabled   bool
	SupabaseURL string
	ServiceKey  string
}

func NewSupabaseService(config SupabaseServiceConfig) *SupabaseService {
	return &SupabaseService{
		supabaseURL: config.SupabaseURL,
		serviceKey:  config.ServiceKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger:    logger.GetLogger(),
		isEnabled: config.IsEnabled,
	}
}

// IsEnabled returns whether the Supabase integration is enabled.
func (s *SupabaseService) IsEnabled() bool {
	return s.isEnabled
}

// DeleteAuthUser removes the auth-provider record for a user. Called when an
// admin deletes an account so the subject cannot log back in.
func (s *SupabaseService) DeleteAuthUser(ctx context.Context, userID string) error {
	if !s.isEnabled {
		return nil
	}

	deleteURL := fmt.Sprintf("%s/auth/v1/admin/users/%s", s.supabaseURL, url.PathEscape(userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, deleteURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create DELETE request: %w", err)
	}

	req.Header.Set("apikey", s.serviceKey)
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send DELETE request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		// Already gone upstream; treat as success so local cleanup proceeds.
		s.logger.Warnw("Auth user already absent upstream", "userID", userID)
		return nil
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("supabase admin DELETE returned status code %d", resp.StatusCode)
	}

	return nil
}

// BanAuthUser suspends a user at the auth provider without deleting the record.
func (s *SupabaseService) BanAuthUser(ctx context.Context, userID string, duration time.Duration) error {
	if !s.isEnabled {
		return nil
	}

	payload := fmt.Sprintf(`{"ban_duration":"%s"}`, duration.String())
	updateURL := fmt.Sprintf("%s/auth/v1/admin/users/%s", s.supabaseURL, url.PathEscape(userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, updateURL, strings.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create PUT request: %w", err)
	}

	req.Header.Set("apikey", s.serviceKey)
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send PUT request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("supabase admin PUT returned status code %d", resp.StatusCode)
	}

	return nil
}
