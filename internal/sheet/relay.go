package sheet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/arabesque-studio/arabesque/internal/shared"
)

// Relay applies mutations to the spreadsheet through the remote relay
// endpoint. Calls are fire-and-forget per request: a failure is surfaced to
// the caller, never retried.
type Relay struct {
	endpoint string
	secret   string
	httpc    *http.Client
	logger   *slog.Logger
}

// NewRelay constructs a Relay.
func NewRelay(endpoint, secret string, httpc *http.Client, logger *slog.Logger) *Relay {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Relay{endpoint: endpoint, secret: secret, httpc: httpc, logger: logger}
}

type relayEnvelope struct {
	Secret  string            `json:"secret"`
	Action  string            `json:"action"`
	Payload map[string]string `json:"payload"`
}

// Apply posts a named mutation with its payload.
func (r *Relay) Apply(ctx context.Context, action string, payload map[string]string) error {
	if r.endpoint == "" || r.secret == "" {
		return fmt.Errorf("%w: write relay", shared.ErrConfigMissing)
	}
	body, err := json.Marshal(relayEnvelope{Secret: r.secret, Action: action, Payload: payload})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrUpstream, err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := r.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrUpstream, err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		if r.logger != nil {
			r.logger.Warn("relay rejected mutation",
				slog.String("action", action),
				slog.Int("status", res.StatusCode))
		}
		return fmt.Errorf("%w: relay returned %d", shared.ErrUpstream, res.StatusCode)
	}
	return nil
}
