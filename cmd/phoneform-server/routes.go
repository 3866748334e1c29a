package main

import (
	"fmt"
	"log/slog"
	"net/http"

	phoneform "github.com/goliatone/go-phoneform"
	"github.com/goliatone/go-phoneform/components/countries"
	"github.com/goliatone/go-phoneform/internal/config"
	"github.com/goliatone/go-phoneform/pkg/formspec"
	"github.com/goliatone/go-phoneform/pkg/intake"
	"github.com/goliatone/go-phoneform/pkg/phonefield"
)

// newRouter mounts the country directory, the phone widget and, when sink is
// set, the intake endpoint checking submissions against the configured form.
func newRouter(cfg *config.Config, logger *slog.Logger, sink intake.Sink) (http.Handler, error) {
	form, err := phoneform.LoadForm(cfg.Form)
	if err != nil {
		return nil, err
	}
	renderer, err := phonefield.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("phone widget renderer: %w", err)
	}

	mux := http.NewServeMux()
	directory := countries.New(countries.WithSelected(cfg.Form.DefaultCountry))
	pattern, err := directory.Mount(mux, "/")
	if err != nil {
		return nil, err
	}
	logger.Info("countries mounted", "path", pattern)

	mux.Handle("/widget/phone", widgetHandler(cfg.Form, form, renderer, logger))

	if sink != nil {
		mux.Handle(cfg.Intake.Path, intake.Handler(
			intake.WithForm(form),
			intake.WithSink(sink),
			intake.WithAllowOrigin(cfg.Intake.AllowOrigin),
			intake.WithLogger(logger),
		))
		logger.Info("intake mounted", "path", cfg.Intake.Path, "form", form.Key)
	}
	return mux, nil
}

// widgetHandler renders the phone widget markup. ?country= preselects a
// directory entry.
func widgetHandler(cfg config.FormConfig, form formspec.Form, renderer *phonefield.Renderer, logger *slog.Logger) http.Handler {
	required := true
	if field, ok := form.PhoneField(); ok {
		required = field.Required
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		field := phonefield.New(
			phonefield.WithDefaultCountry(cfg.DefaultCountry),
			phonefield.WithPlaceholder(cfg.Placeholder),
			phonefield.WithRequired(required),
		)
		if code := r.URL.Query().Get("country"); code != "" {
			field.SelectCountry(code)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := renderer.Render(w, field); err != nil {
			logger.Error("render phone widget", "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	})
}
