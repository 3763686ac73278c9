package middleware

import (
	"net/http"
	"strings"
	"testing"
)

func TestRedactor_Text(t *testing.T) {
	r := newRedactor(RedactOptions{})

	cases := map[string]string{
		"":                      "",
		"review_id=1":           "review_id=1",
		"owner=a.b@example.com": "owner=[REDACTED:email]",
		"call=415-555-0134":     "call=[REDACTED:phone]",
		"trace=3fa85f64-5717-4562-b3fc-2c963f66afa6": "trace=[REDACTED:id]",
	}
	for in, want := range cases {
		if got := r.text(in); got != want {
			t.Fatalf("text(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestRedactor_Headers(t *testing.T) {
	r := newRedactor(RedactOptions{MaskHeaders: []string{" X-API-Key ", ""}})

	h := http.Header{}
	h.Set("Authorization", "Bearer secret")
	h.Set("Cookie", "sid=1")
	h.Set("X-Api-Key", "k")
	h.Add("Accept", "application/json")
	h.Add("Accept", "text/plain")
	h.Set("From", "dav3rid@example.com")

	got := r.headers(h)
	for _, k := range []string{"Authorization", "Cookie", "X-Api-Key"} {
		if got[k] != "[REDACTED]" {
			t.Fatalf("%s = %q; want masked", k, got[k])
		}
	}
	if got["Accept"] != "application/json, text/plain" {
		t.Fatalf("Accept = %q", got["Accept"])
	}
	if strings.Contains(got["From"], "@") {
		t.Fatalf("email leaked: %q", got["From"])
	}
}
