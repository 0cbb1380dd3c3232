package dto

import (
	"encoding/json"
	"strings"
)

// InboundMessage is the normalized inbound SMS handed to the core:
// sender address and raw text, nothing provider-specific.
type InboundMessage struct {
	From string
	Text string
}

// Recognized JSON webhook shapes. Providers disagree on casing and
// field names, so each variant is decoded explicitly instead of
// duck-typing field paths.
type twilioJSONInbound struct {
	From string `json:"From"`
	Body string `json:"Body"`
}

type genericJSONInbound struct {
	From string `json:"from"`
	Text string `json:"text"`
}

// DecodeInboundJSON tries each recognized JSON shape in order and
// normalizes the first match. Returns false when no shape yields both
// a sender and a body.
func DecodeInboundJSON(body []byte) (InboundMessage, bool) {
	var tw twilioJSONInbound
	if err := json.Unmarshal(body, &tw); err == nil && tw.From != "" && tw.Body != "" {
		return InboundMessage{From: tw.From, Text: tw.Body}, true
	}
	var gen genericJSONInbound
	if err := json.Unmarshal(body, &gen); err == nil && gen.From != "" && gen.Text != "" {
		return InboundMessage{From: gen.From, Text: gen.Text}, true
	}
	return InboundMessage{}, false
}

// FromForm normalizes the Twilio form-encoded webhook shape. An empty
// body is accepted (media-only messages) and classifies as
// unrecognized downstream; a missing sender is not.
func FromForm(from, body string) (InboundMessage, bool) {
	if strings.TrimSpace(from) == "" {
		return InboundMessage{}, false
	}
	return InboundMessage{From: from, Text: body}, true
}
