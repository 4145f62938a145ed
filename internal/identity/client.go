package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"hackathon-portal-backend/internal/config"

	"github.com/google/uuid"
)

//go:generate mockgen -source=client.go -destination=../mocks/identity_mocks.go -package=mocks

// MetadataClient mirrors per-user metadata into the identity provider so the
// rest of the platform can authorize on token claims without a database read.
type MetadataClient interface {
	UpdateUserMetadata(ctx context.Context, userID uuid.UUID, teamID *uuid.UUID) error
}

// Client talks to the identity provider's management API with an api key.
type Client struct {
	cfg        *config.Config
	httpClient *http.Client
}

// NewClient creates a new identity metadata client
func NewClient(cfg *config.Config) *Client {
	timeout := time.Duration(cfg.IdentityTimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type metadataPayload struct {
	PublicMetadata map[string]interface{} `json:"public_metadata"`
}

// UpdateUserMetadata writes the user's team_id into the provider's public
// metadata. A nil teamID clears the mirrored value.
func (c *Client) UpdateUserMetadata(ctx context.Context, userID uuid.UUID, teamID *uuid.UUID) error {
	if c.cfg.IdentityAPIURL == "" || c.cfg.IdentityAPIKey == "" {
		return fmt.Errorf("identity configuration missing (IDENTITY_API_URL or IDENTITY_API_KEY)")
	}

	var teamValue interface{}
	if teamID != nil {
		teamValue = teamID.String()
	}
	body, err := json.Marshal(metadataPayload{
		PublicMetadata: map[string]interface{}{"team_id": teamValue},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal metadata payload: %w", err)
	}

	url := strings.TrimRight(c.cfg.IdentityAPIURL, "/") + "/users/" + userID.String() + "/metadata"
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build metadata request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.IdentityAPIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("identity metadata request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("identity metadata update returned %d: %s", resp.StatusCode, string(detail))
	}
	return nil
}
