package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestUserAgentTransport(t *testing.T) {
	var got string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
	}))
	defer ts.Close()

	client := &http.Client{Transport: &UserAgentTransport{UserAgent: "vscode-file-finder/test"}}

	resp, err := client.Get(ts.URL)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if got != "vscode-file-finder/test" {
		t.Errorf("User-Agent = %q, want %q", got, "vscode-file-finder/test")
	}

	// An explicit User-Agent wins.
	req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("User-Agent", "custom/1.0")
	resp, err = client.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if got != "custom/1.0" {
		t.Errorf("User-Agent = %q, want %q", got, "custom/1.0")
	}
}
