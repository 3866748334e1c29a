package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/goliatone/go-phoneform"
	"github.com/goliatone/go-phoneform/internal/config"
	"github.com/goliatone/go-phoneform/internal/logging"
	"github.com/goliatone/go-phoneform/pkg/controller"
	"github.com/goliatone/go-phoneform/pkg/prompt"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup runs before exit.
func run() int {
	configPath := flag.String("config", os.Getenv("PHONEFORM_CONFIG"), "YAML config path")
	formKind := flag.String("form", "", "embedded form to fill (contact or membership)")
	endpoint := flag.String("endpoint", "", "submission URL, overrides the config")
	backend := flag.String("backend", "", "submission backend: webhook or script")
	flag.Parse()

	cfg, err := config.LoadPath(*configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		return 1
	}
	if *formKind != "" {
		cfg.Form.Kind = *formKind
		cfg.Form.Path = ""
	}
	if *endpoint != "" {
		cfg.Submission.URL = *endpoint
	}
	if *backend != "" {
		cfg.Submission.Backend = *backend
	}
	if err := cfg.Validate(); err != nil {
		log.Printf("Invalid config: %v", err)
		return 1
	}

	logger := logging.New(cfg.Log)
	driver := prompt.NewSurveyDriver()

	form, err := phoneform.LoadForm(cfg.Form)
	if err != nil {
		log.Printf("Failed to load form: %v", err)
		return 1
	}
	feedback := &prompt.Feedback{Driver: driver, Labels: prompt.Labels(form)}

	engine, err := phoneform.New(cfg, phoneform.WithLogger(logger), phoneform.WithFeedback(feedback))
	if err != nil {
		log.Printf("Failed to build form: %v", err)
		return 1
	}
	defer func() {
		if err := engine.Close(); err != nil {
			logger.Warn("close engine", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	engine.Controller.Mount(ctx)
	if title := engine.Form.Title; title != "" {
		fmt.Println(title)
	}

	outcome, err := prompt.Run(ctx, driver, engine.Controller)
	switch {
	case errors.Is(err, prompt.ErrAborted):
		fmt.Println("Borrador guardado. Puedes continuar más tarde.")
		return 130
	case errors.Is(err, prompt.ErrGaveUp):
		fmt.Println("Borrador guardado. Puedes reintentar más tarde.")
		return 1
	case err != nil:
		log.Printf("Failed to submit form: %v", err)
		return 1
	}
	if outcome.Kind != controller.OutcomeSuccess {
		return 1
	}
	return 0
}
