package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexLabelAcceptsStringAndNumber(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{name: "string label", body: `{"indexLabel":"3"}`, want: "3"},
		{name: "numeric label", body: `{"indexLabel":3}`, want: "3"},
		{name: "null label", body: `{"indexLabel":null}`, want: ""},
		{name: "absent label", body: `{}`, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req EventRequest
			require.NoError(t, json.Unmarshal([]byte(tc.body), &req))
			assert.Equal(t, tc.want, string(req.IndexLabel))
		})
	}
}

func TestEventRequestToPayload(t *testing.T) {
	var req EventRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"kind": "CLIENT_ASSIGNED",
		"clientName": "Ana",
		"clientPhone": "+12145551000",
		"assignments": [{"barberId": "lyric", "memberIndex": 2}],
		"declinedPhotos": true,
		"indexLabel": 4
	}`), &req))

	p := req.ToPayload()
	assert.Equal(t, "Ana", p.ClientName)
	assert.Equal(t, "+12145551000", p.ClientPhone)
	require.Len(t, p.Assignments, 1)
	assert.Equal(t, "lyric", p.Assignments[0].BarberID)
	assert.Equal(t, 2, p.Assignments[0].MemberIndex)
	assert.True(t, p.DeclinedPhotos)
	assert.Equal(t, "4", p.IndexLabel)
}

func TestDecodeInboundJSONShapes(t *testing.T) {
	msg, ok := DecodeInboundJSON([]byte(`{"From":"+12145551000","Body":"STOP"}`))
	require.True(t, ok)
	assert.Equal(t, "+12145551000", msg.From)
	assert.Equal(t, "STOP", msg.Text)

	msg, ok = DecodeInboundJSON([]byte(`{"from":"+12145551000","text":"help"}`))
	require.True(t, ok)
	assert.Equal(t, "help", msg.Text)

	_, ok = DecodeInboundJSON([]byte(`{"sender":"+12145551000"}`))
	assert.False(t, ok, "unknown shapes are rejected, not guessed")

	_, ok = DecodeInboundJSON([]byte(`not json`))
	assert.False(t, ok)
}

func TestFromForm(t *testing.T) {
	msg, ok := FromForm("+12145551000", "AVAILABLE")
	require.True(t, ok)
	assert.Equal(t, "AVAILABLE", msg.Text)

	msg, ok = FromForm("+12145551000", "")
	require.True(t, ok, "empty body accepted for media-only messages")
	assert.Empty(t, msg.Text)

	_, ok = FromForm("", "hello")
	assert.False(t, ok)
}
