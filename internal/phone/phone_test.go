package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{name: "formatted us number", raw: "(214) 991-9940", want: "+12149919940"},
		{name: "eleven digits leading one", raw: "12149919940", want: "+12149919940"},
		{name: "already e164", raw: "+12149919940", want: "+12149919940"},
		{name: "dashed ten digits", raw: "214-991-9940", want: "+12149919940"},
		{name: "dotted with spaces", raw: " 214.991.9940 ", want: "+12149919940"},
		{name: "non us length kept as digits", raw: "+44 20 7946 0958", want: "+442079460958"},
		{name: "empty input", raw: "", want: ""},
		{name: "no digits at all", raw: "ext.", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.raw))
		})
	}
}

func TestNormalizeEquivalentFormsAgree(t *testing.T) {
	forms := []string{"(214) 991-9940", "12149919940", "+12149919940", "1 (214) 991-9940"}
	want := Normalize(forms[0])
	for _, f := range forms {
		assert.Equal(t, want, Normalize(f), "form %q", f)
	}
}
