package prompt

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-phoneform/pkg/controller"
	"github.com/goliatone/go-phoneform/pkg/formspec"
	"github.com/goliatone/go-phoneform/pkg/submission"
)

// stubDriver replays scripted answers. Inputs rejected by the prompt's
// validator are recorded and the next scripted input is used, the way an
// interactive prompt asks again.
type stubDriver struct {
	inputs       []string
	selectIdx    []int
	confirm      []bool
	textAreas    []string
	infoMessages []string
	rejected     []string
	inputPos     int
	selectPos    int
	confirmPos   int
	textPos      int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	for {
		if s.inputPos >= len(s.inputs) {
			return "", errors.New("no input scripted")
		}
		val := s.inputs[s.inputPos]
		s.inputPos++
		if cfg.Validator != nil {
			if err := cfg.Validator(val); err != nil {
				s.rejected = append(s.rejected, err.Error())
				continue
			}
		}
		return val, nil
	}
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, _ TextAreaConfig) (string, error) {
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func newController(t *testing.T, key string, submitter submission.Submitter, driver Driver) *controller.Controller {
	t.Helper()
	form, ok := formspec.Embedded().Form(key)
	if !ok {
		t.Fatalf("form %q missing", key)
	}
	ctrl, err := controller.New(form, submitter,
		controller.WithFeedback(&Feedback{Driver: driver, Labels: Labels(form)}),
		controller.WithSleep(func(context.Context, time.Duration) error { return nil }),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return ctrl
}

func TestRun_MembershipHappyPath(t *testing.T) {
	driver := &stubDriver{
		// name, phone (first attempt rejected), email
		inputs: []string{"Ana", "512345678", "612 345 678", "ana@example.com"},
		// country ES, age si, vehicle no
		selectIdx: []int{0, 0, 1},
		textAreas: []string{""},
	}
	var got submission.Payload
	submitter := submission.SubmitterFunc(func(_ context.Context, payload submission.Payload) error {
		got = payload
		return nil
	})
	ctrl := newController(t, "membership", submitter, driver)

	outcome, err := Run(context.Background(), driver, ctrl)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if outcome.Kind != controller.OutcomeSuccess {
		t.Fatalf("outcome = %+v", outcome)
	}
	if got["phone"] != "+34612345678" || got["age"] != "Mayor de edad" || got["vehicle"] != "No tiene vehículo" {
		t.Fatalf("payload = %v", got)
	}
	want := []string{"Formato inválido para España. Ejemplo: 612 345 678"}
	if diff := cmp.Diff(want, driver.rejected); diff != "" {
		t.Fatalf("rejections mismatch (-want +got):\n%s", diff)
	}
	if last := driver.infoMessages[len(driver.infoMessages)-1]; !strings.HasPrefix(last, "✓ ") {
		t.Fatalf("last message = %q, want success", last)
	}
}

func TestRun_SelectsCountryBeforeValidatingPhone(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Luis", "luis@example.com", "3123456789"},
		selectIdx: []int{11}, // Colombia
		textAreas: []string{"Hola"},
	}
	var got submission.Payload
	submitter := submission.SubmitterFunc(func(_ context.Context, payload submission.Payload) error {
		got = payload
		return nil
	})
	ctrl := newController(t, "contact", submitter, driver)

	if _, err := Run(context.Background(), driver, ctrl); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got["telefono"] != "+573123456789" {
		t.Fatalf("telefono = %q", got["telefono"])
	}
}

func TestRun_TransportFailureRetriesOnConfirm(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Luis", "luis@example.com", ""},
		selectIdx: []int{0},
		textAreas: []string{"Hola"},
		confirm:   []bool{true},
	}
	calls := 0
	submitter := submission.SubmitterFunc(func(context.Context, submission.Payload) error {
		calls++
		if calls == 1 {
			return errors.New("connection refused")
		}
		return nil
	})
	ctrl := newController(t, "contact", submitter, driver)

	outcome, err := Run(context.Background(), driver, ctrl)
	if err != nil || outcome.Kind != controller.OutcomeSuccess {
		t.Fatalf("Run = %+v, %v", outcome, err)
	}
	if calls != 2 {
		t.Fatalf("submitter calls = %d, want 2", calls)
	}
}

func TestRun_DeclinedRetry(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Luis", "luis@example.com", ""},
		selectIdx: []int{0},
		textAreas: []string{"Hola"},
		confirm:   []bool{false},
	}
	submitter := submission.SubmitterFunc(func(context.Context, submission.Payload) error {
		return errors.New("connection refused")
	})
	ctrl := newController(t, "contact", submitter, driver)

	outcome, err := Run(context.Background(), driver, ctrl)
	if !errors.Is(err, ErrGaveUp) {
		t.Fatalf("err = %v, want ErrGaveUp", err)
	}
	if outcome.Kind != controller.OutcomeTransportFailed {
		t.Fatalf("outcome = %+v", outcome)
	}
	if got := ctrl.Values()["nombre"]; got != "Luis" {
		t.Fatalf("values lost after failure: %q", got)
	}
}

func TestFill_PropagatesDriverErrors(t *testing.T) {
	driver := &stubDriver{}
	ctrl := newController(t, "contact", submission.SubmitterFunc(func(context.Context, submission.Payload) error { return nil }), driver)
	err := Fill(context.Background(), driver, ctrl)
	if err == nil || !strings.Contains(err.Error(), "prompt: nombre") {
		t.Fatalf("err = %v", err)
	}
}

func TestTextValidator(t *testing.T) {
	form, _ := formspec.Embedded().Form("membership")
	name, _ := form.Field("name")
	email, _ := form.Field("email")

	if err := textValidator(name)("A"); err == nil {
		t.Fatalf("single letter name should fail minLength")
	}
	if err := textValidator(name)("Ana"); err != nil {
		t.Fatalf("Ana: %v", err)
	}
	if err := textValidator(email)("ana@"); err == nil {
		t.Fatalf("malformed email accepted")
	}
	optional := formspec.Field{Name: "x", Kind: formspec.KindText}
	if err := textValidator(optional)(""); err != nil {
		t.Fatalf("optional empty: %v", err)
	}
}
