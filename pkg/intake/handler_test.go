package intake

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-phoneform/pkg/controller"
	"github.com/goliatone/go-phoneform/pkg/formspec"
	"github.com/goliatone/go-phoneform/pkg/submission"
)

type memorySink struct {
	mu      sync.Mutex
	entries []Entry
}

func (m *memorySink) Deliver(_ context.Context, entry Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return nil
}

func membershipPayload() submission.Payload {
	return submission.Payload{
		"name":    "Ana <b>García</b>",
		"phone":   "+34612345678",
		"email":   "ana@example.com",
		"age":     "si",
		"vehicle": "no",
	}
}

func TestHandler_ScriptSubmitterRoundTrip(t *testing.T) {
	sink := &memorySink{}
	server := httptest.NewServer(Handler(WithSink(sink)))
	defer server.Close()

	script, err := submission.NewScript(server.URL, submission.WithSanitize(false))
	if err != nil {
		t.Fatalf("NewScript: %v", err)
	}
	if err := script.Submit(context.Background(), membershipPayload()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if len(sink.entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(sink.entries))
	}
	entry := sink.entries[0]
	if entry.ID == "" || entry.ReceivedAt.IsZero() {
		t.Fatalf("entry metadata missing: %+v", entry)
	}
	want := map[string]string{
		"name":     "Ana García",
		"phone":    "+34612345678",
		"email":    "ana@example.com",
		"age":      "si",
		"vehicle":  "no",
		"comments": "No especificado",
	}
	if diff := cmp.Diff(want, entry.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestHandler_MissingRequiredField(t *testing.T) {
	sink := &memorySink{}
	server := httptest.NewServer(Handler(WithSink(sink)))
	defer server.Close()

	payload := membershipPayload()
	delete(payload, "vehicle")

	script, _ := submission.NewScript(server.URL)
	err := script.Submit(context.Background(), payload)
	var transportErr *submission.TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("err = %v, want TransportError", err)
	}
	if transportErr.Message != "El campo vehicle es requerido" {
		t.Fatalf("message = %q", transportErr.Message)
	}
	if transportErr.Status != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", transportErr.Status)
	}
	if len(sink.entries) != 0 {
		t.Fatalf("rejected entry reached the sink")
	}
}

func TestHandler_InvalidEmail(t *testing.T) {
	rec := httptest.NewRecorder()
	payload := membershipPayload()
	payload["email"] = "ana@example"
	body, _ := json.Marshal(payload)

	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/send-email", strings.NewReader(string(body))))

	var answer submission.ScriptResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &answer); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if answer.Success || answer.Message != DefaultInvalidEmail {
		t.Fatalf("answer = %+v", answer)
	}
}

func TestHandler_RejectsMalformedBodies(t *testing.T) {
	cases := map[string]string{
		"not json":  "name=Ana",
		"array":     `["Ana"]`,
		"null":      `null`,
		"nested":    `{"name":{"first":"Ana"}}`,
		"too large": `{"name":"` + strings.Repeat("a", 256) + `"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Handler(WithMaxBodyBytes(128)).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestHandler_CORSPreflightAndMethods(t *testing.T) {
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("allow origin = %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "POST" {
		t.Fatalf("allow methods = %q", got)
	}

	rec = httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("GET status = %d", rec.Code)
	}
}

func TestHandler_SinkFailure(t *testing.T) {
	failing := SinkFunc(func(context.Context, Entry) error { return errors.New("disk full") })
	rec := httptest.NewRecorder()
	body, _ := json.Marshal(membershipPayload())
	Handler(WithSink(failing)).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(string(body))))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	var answer submission.ScriptResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &answer)
	if answer.Success || answer.Message != DefaultFailureMessage {
		t.Fatalf("answer = %+v", answer)
	}
}

func TestHandler_ScalarValuesAreFormatted(t *testing.T) {
	sink := &memorySink{}
	rec := httptest.NewRecorder()
	body := `{"name":"Ana","phone":612345678,"email":"ana@example.com","age":true,"vehicle":"no"}`
	Handler(WithSink(sink)).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", rec.Code, rec.Body.String())
	}
	fields := sink.entries[0].Fields
	if fields["phone"] != "612345678" || fields["age"] != "true" {
		t.Fatalf("fields = %v", fields)
	}
}

func TestFileSink_AppendsJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "membership.jsonl")
	sink, err := NewFileSink(path)
	if err != nil {
		t.Fatalf("NewFileSink: %v", err)
	}
	ctx := context.Background()
	for _, id := range []string{"a", "b"} {
		if err := sink.Deliver(ctx, Entry{ID: id, Fields: map[string]string{"name": id}}); err != nil {
			t.Fatalf("Deliver: %v", err)
		}
	}

	f, err := os.Open(sink.Path())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	var ids []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry Entry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("decode line: %v", err)
		}
		ids = append(ids, entry.ID)
	}
	if diff := cmp.Diff([]string{"a", "b"}, ids); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestNewFileSink_RequiresPath(t *testing.T) {
	if _, err := NewFileSink(""); err == nil {
		t.Fatalf("expected error")
	}
}

func TestHandler_ContactFormOverScript(t *testing.T) {
	contact, ok := formspec.Embedded().Form("contact")
	if !ok {
		t.Fatalf("contact form not embedded")
	}
	sink := &memorySink{}
	server := httptest.NewServer(Handler(WithForm(contact), WithSink(sink)))
	defer server.Close()

	script, err := submission.NewScript(server.URL)
	if err != nil {
		t.Fatalf("NewScript: %v", err)
	}
	ctrl, err := controller.New(contact, script,
		controller.WithSleep(func(context.Context, time.Duration) error { return nil }),
	)
	if err != nil {
		t.Fatalf("controller.New: %v", err)
	}

	ctx := context.Background()
	for name, value := range map[string]string{
		"nombre":  "Luis",
		"email":   "luis@example.com",
		"mensaje": "Hola",
	} {
		if err := ctrl.Set(ctx, name, value); err != nil {
			t.Fatalf("Set(%q): %v", name, err)
		}
	}

	outcome, err := ctrl.Submit(ctx)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if outcome.Kind != controller.OutcomeSuccess {
		t.Fatalf("outcome = %+v, want success", outcome)
	}
	if len(sink.entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(sink.entries))
	}
	fields := sink.entries[0].Fields
	if fields["nombre"] != "Luis" || fields["telefono"] != "No proporcionado" {
		t.Fatalf("unexpected fields %v", fields)
	}
	if _, ok := fields["comments"]; ok {
		t.Fatalf("membership default leaked into contact entry: %v", fields)
	}
}

func TestWithForm_DerivesChecks(t *testing.T) {
	contact, _ := formspec.Embedded().Form("contact")
	opts := NewOptions(WithForm(contact))

	if diff := cmp.Diff([]string{"nombre", "email", "mensaje"}, opts.RequiredFields); diff != "" {
		t.Fatalf("required fields mismatch (-want +got):\n%s", diff)
	}
	if opts.EmailField != "email" {
		t.Fatalf("email field = %q", opts.EmailField)
	}
	if diff := cmp.Diff(map[string]string{"telefono": "No proporcionado"}, opts.Defaults); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}

	rec := httptest.NewRecorder()
	body := strings.NewReader(`{"nombre":"Luis","email":"luis@example.com","mensaje":"Hola"}`)
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", body))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("membership defaults accepted a contact payload: %d", rec.Code)
	}
}
