package web

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pirots2ascii/render"
)

const testReplay = `<response><game><pubdata><![CDATA[<PURCHASES><PURCHASE>
<RESULT><ACTIONS><ORDERED>
  <ACTION name="spin" window="0,0,a;0,1,b|1,0,c;1,1,&lt;" mask="0200000000000000"/>
  <ACTION name="move">
    <STEP prev-pos="2,3" path="4,4" pos="6,1" sym="a" first-step="true" angry-birds="red"/>
  </ACTION>
</ORDERED></ACTIONS></RESULT>
</PURCHASE></PURCHASES>]]></pubdata></game></response>`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := NewServer(Config{HTTPAddr: "127.0.0.1:0", MaxUploadMB: 1, Theme: render.DefaultTheme})
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return s
}

func uploadRequest(t *testing.T, field, name, content string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if field != "" {
		fw, err := mw.CreateFormFile(field, name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		fw.Write([]byte(content))
	}
	mw.Close()
	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestNewServerRequiresConfig(t *testing.T) {
	if _, err := NewServer(Config{MaxUploadMB: 1}); err == nil {
		t.Error("expected error for missing address")
	}
	if _, err := NewServer(Config{HTTPAddr: ":0"}); err == nil {
		t.Error("expected error for missing upload size")
	}
}

func TestIndex(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer(t).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `name="xmlfile"`) {
		t.Errorf("upload form missing file field")
	}
}

func TestUpload(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer(t).Handler().ServeHTTP(rec, uploadRequest(t, "xmlfile", "round.xml", testReplay))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	wants := []string{
		"Total <strong>2</strong> game states found",
		"round.xml",
		"1. Result 0 - Action: spin (Mask: 0200000000000000, 1 positions)",
		"2. Result 0 - Action: move - Step 1 Path",
		`font-weight: bold;">b</span>`,
		"&lt; ",
		"Highlight Positions:</strong> (7,1)",
		"Path Coordinates:</strong> (2,3) → (4,4) → (6,1)",
		"Win Amount: 0",
		"First Step",
		"Angry Birds: red",
		"Path: 4,4, Position: 6,1, Previous: 2,3",
		">WINDOW<",
		">PATH<",
	}
	for _, w := range wants {
		if !strings.Contains(body, w) {
			t.Errorf("results page missing %q", w)
		}
	}
	if strings.Contains(body, "Last Step") {
		t.Errorf("results page shows Last Step for a step without it")
	}
}

func TestUploadMissingFile(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer(t).Handler().ServeHTTP(rec, uploadRequest(t, "", "", ""))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Please select a file") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestUploadParseError(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer(t).Handler().ServeHTTP(rec, uploadRequest(t, "xmlfile", "bad.xml", "<response><game>"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Parse Error") || !strings.Contains(body, "parse envelope:") {
		t.Errorf("body = %q", body)
	}
}

func TestListenAndServeStopsWithContext(t *testing.T) {
	s := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
