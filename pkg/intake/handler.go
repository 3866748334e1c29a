package intake

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-phoneform/pkg/formspec"
	"github.com/goliatone/go-phoneform/pkg/submission"
)

// Handler answers form posts with the default options plus fns.
func Handler(fns ...OptionFn) http.Handler {
	return HandlerWithOptions(NewOptions(fns...))
}

// HandlerWithOptions answers form posts with opts as given.
func HandlerWithOptions(opts Options) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeCORS(w, opts)

		switch r.Method {
		case http.MethodOptions:
			w.WriteHeader(http.StatusNoContent)
			return
		case http.MethodPost:
		default:
			w.Header().Set("Allow", "POST, OPTIONS")
			writeAnswer(w, http.StatusMethodNotAllowed, false, http.StatusText(http.StatusMethodNotAllowed))
			return
		}

		fields, err := decodeFields(http.MaxBytesReader(w, r.Body, opts.MaxBodyBytes))
		if err != nil {
			opts.Logger.Debug("intake: rejected body", "error", err)
			writeAnswer(w, http.StatusBadRequest, false, DefaultBadRequest)
			return
		}

		clean := submission.Sanitize(submission.Payload(fields))
		for _, name := range opts.RequiredFields {
			if clean[name] == "" {
				writeAnswer(w, http.StatusUnprocessableEntity, false, fmt.Sprintf(DefaultMissingFormat, name))
				return
			}
		}
		for name, value := range opts.Defaults {
			if clean[name] == "" {
				clean[name] = value
			}
		}

		if opts.EmailField != "" {
			if email, ok := clean[opts.EmailField]; ok && !formspec.ValidEmail(email) {
				writeAnswer(w, http.StatusUnprocessableEntity, false, DefaultInvalidEmail)
				return
			}
		}

		entry := Entry{
			ID:         uuid.NewString(),
			ReceivedAt: time.Now().UTC(),
			RemoteAddr: r.RemoteAddr,
			Fields:     clean,
		}
		if err := opts.Sink.Deliver(r.Context(), entry); err != nil {
			opts.Logger.Error("intake: deliver entry", "id", entry.ID, "error", err)
			writeAnswer(w, http.StatusInternalServerError, false, opts.FailureMessage)
			return
		}

		opts.Logger.Info("intake: entry accepted", "id", entry.ID, "fields", len(entry.Fields))
		writeAnswer(w, http.StatusOK, true, opts.SuccessMessage)
	})
}

func writeCORS(w http.ResponseWriter, opts Options) {
	if opts.AllowOrigin == "" {
		return
	}
	w.Header().Set("Access-Control-Allow-Origin", opts.AllowOrigin)
	w.Header().Set("Access-Control-Allow-Methods", "POST")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+submission.RequestIDHeader)
}

func writeAnswer(w http.ResponseWriter, status int, success bool, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(submission.ScriptResponse{Success: success, Message: message})
}

var errNotObject = errors.New("intake: body is not a JSON object")

// decodeFields flattens a JSON object into strings. Scalars are formatted,
// nested values are rejected.
func decodeFields(body io.Reader) (map[string]string, error) {
	var raw map[string]any
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errNotObject
	}

	fields := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case nil:
			fields[key] = ""
		case string:
			fields[key] = v
		case bool:
			fields[key] = strconv.FormatBool(v)
		case float64:
			fields[key] = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			return nil, fmt.Errorf("intake: field %q is not a scalar", key)
		}
	}
	return fields, nil
}
