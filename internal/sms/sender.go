package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"OptiTools/internal/cli/api"
	"OptiTools/internal/config"
)

// Response is the provider's answer: Body is the decoded JSON or the raw text.
type Response struct {
	StatusCode int
	Body       any
}

// Sender submits batches to one bulk messages endpoint.
type Sender struct {
	URL    string
	Key    string
	Secret string
	Client *http.Client
	Logger *zap.SugaredLogger
}

// NewSender creates a Sender with http.DefaultClient.
func NewSender(url, key, secret string, logger *zap.SugaredLogger) *Sender {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Sender{URL: url, Key: key, Secret: secret, Client: http.DefaultClient, Logger: logger}
}

// Send posts the batch once. Empty credentials fail with config.ErrMissingCredentials
// before any request. A 200 is logged at info level, any other status at
// error level; neither is an error. A transport failure is logged with its stack
// and returned so the caller can tell nothing was delivered.
func (s *Sender) Send(ctx context.Context, batch Batch) (*Response, error) {
	if s.Key == "" || s.Secret == "" {
		return nil, config.ErrMissingCredentials
	}
	log := s.Logger.With("batch_id", uuid.NewString())
	log.Infow("sending batch", "url", s.URL, "messages", len(batch.Messages))

	resp, body, err := api.PostJSON(ctx, s.Client, s.URL, batch, api.BasicAuth{Username: s.Key, Password: s.Secret})
	if err != nil {
		log.Errorw("Exception occurred during sending request", "error", err, zap.StackSkip("stack", 1))
		return nil, err
	}

	res := &Response{StatusCode: resp.StatusCode, Body: api.DecodeBody(body)}
	if resp.StatusCode == http.StatusOK {
		log.Infow("Success: "+renderBody(res.Body), "response", res.Body)
	} else {
		log.Errorw(fmt.Sprintf("Failure (%d): %s", resp.StatusCode, renderBody(res.Body)),
			"status", resp.StatusCode, "response", res.Body)
	}
	return res, nil
}

// renderBody prints text as is and decoded JSON compactly.
func renderBody(body any) string {
	if s, ok := body.(string); ok {
		return s
	}
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Sprint(body)
	}
	return string(b)
}
