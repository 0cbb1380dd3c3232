package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/elitekutzdev/elitekutz-sms/internal/config"
)

// Sender delivers one SMS. Implementations must be safe for concurrent
// use; the dispatcher fans out all sends of a batch at once.
type Sender interface {
	Send(ctx context.Context, to, body string) error
}

const twilioBaseURL = "https://api.twilio.com"

// TwilioSender posts to the Twilio Messages API.
type TwilioSender struct {
	client     *http.Client
	baseURL    string
	accountSID string
	authToken  string
	from       string
}

// NewTwilioSender builds a sender from Twilio credentials.
func NewTwilioSender(cfg config.TwilioConfig) *TwilioSender {
	base := cfg.BaseURL
	if base == "" {
		base = twilioBaseURL
	}
	return &TwilioSender{
		client:     &http.Client{Timeout: 15 * time.Second},
		baseURL:    strings.TrimRight(base, "/"),
		accountSID: cfg.AccountSID,
		authToken:  cfg.AuthToken,
		from:       cfg.FromNumber,
	}
}

type twilioError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Send posts one message. Non-2xx responses are returned as errors with
// the provider's message attached when parseable.
func (s *TwilioSender) Send(ctx context.Context, to, body string) error {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", s.baseURL, s.accountSID)
	form := url.Values{}
	form.Set("To", to)
	form.Set("From", s.from)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build sms request: %w", err)
	}
	req.SetBasicAuth(s.accountSID, s.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send sms: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var te twilioError
	if json.Unmarshal(data, &te) == nil && te.Message != "" {
		return fmt.Errorf("twilio %d (code %d): %s", resp.StatusCode, te.Code, te.Message)
	}
	return fmt.Errorf("twilio %d", resp.StatusCode)
}

// LogSender logs instead of delivering. Used when no provider
// credentials are configured (local development).
type LogSender struct {
	logger *zap.Logger
}

// NewLogSender builds the logging sender.
func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// Send logs the message and reports success.
func (s *LogSender) Send(_ context.Context, to, body string) error {
	s.logger.Info("sms (dry run)", zap.String("to", to), zap.String("body", body))
	return nil
}

// NewSenderFromConfig picks the Twilio sender when credentials are
// present, the logging sender otherwise.
func NewSenderFromConfig(cfg config.TwilioConfig, logger *zap.Logger) Sender {
	if cfg.AccountSID == "" || cfg.AuthToken == "" || cfg.FromNumber == "" {
		logger.Warn("twilio credentials missing, using dry-run sender")
		return NewLogSender(logger)
	}
	return NewTwilioSender(cfg)
}
