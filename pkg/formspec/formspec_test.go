package formspec

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestEmbedded_ShipsContactAndMembership(t *testing.T) {
	set := Embedded()
	if diff := cmp.Diff([]string{"contact", "membership"}, set.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}

	membership, ok := set.Form("membership")
	if !ok {
		t.Fatalf("membership form missing")
	}
	var names []string
	for _, field := range membership.Fields {
		names = append(names, field.Name)
	}
	want := []string{"name", "phone", "email", "age", "vehicle", "comments"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("membership fields mismatch (-want +got):\n%s", diff)
	}

	name, _ := membership.Field("name")
	if name.MinLength != 2 || !name.Required {
		t.Fatalf("name field = %+v, want required with minLength 2", name)
	}
	age, _ := membership.Field("age")
	choice, ok := age.Choice("si")
	if !ok || choice.Payload != "Mayor de edad" {
		t.Fatalf("age choice si = %+v, %v", choice, ok)
	}
	comments, _ := membership.Field("comments")
	if comments.Required || comments.EmptyValue != "Sin comentarios" {
		t.Fatalf("comments field = %+v", comments)
	}
	if _, ok := membership.PhoneField(); !ok {
		t.Fatalf("membership should declare a phone field")
	}
}

func TestEmbedded_ContactPhoneIsOptional(t *testing.T) {
	contact, ok := Embedded().Form("contact")
	if !ok {
		t.Fatalf("contact form missing")
	}
	phone, ok := contact.PhoneField()
	if !ok {
		t.Fatalf("contact should declare a phone field")
	}
	if phone.Name != "telefono" || phone.Required || phone.EmptyValue != "No proporcionado" {
		t.Fatalf("contact phone = %+v", phone)
	}
	email, _ := contact.Field("email")
	if got := email.FormatMessage(); got != "Por favor, ingrese un email válido." {
		t.Fatalf("email format message = %q", got)
	}
}

func TestParse_JSONAndYAML(t *testing.T) {
	jsonDoc := []byte(`{"key":"demo","fields":[{"name":"name","kind":"TEXT","required":true}]}`)
	yamlDoc := []byte("key: demo\nfields:\n  - name: name\n    kind: text\n    required: true\n")

	fromJSON, err := Parse(jsonDoc, "demo.json")
	if err != nil {
		t.Fatalf("parse json: %v", err)
	}
	fromYAML, err := Parse(yamlDoc, "demo.yaml")
	if err != nil {
		t.Fatalf("parse yaml: %v", err)
	}
	if diff := cmp.Diff(fromJSON, fromYAML); diff != "" {
		t.Fatalf("json and yaml differ (-json +yaml):\n%s", diff)
	}
	if fromJSON.Fields[0].Kind != KindText {
		t.Fatalf("kind not normalised: %q", fromJSON.Fields[0].Kind)
	}
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"empty":          "   ",
		"no key":         "fields:\n  - name: a\n",
		"no fields":      "key: demo\n",
		"duplicate":      "key: demo\nfields:\n  - name: a\n  - name: a\n",
		"unknown kind":   "key: demo\nfields:\n  - name: a\n    kind: slider\n",
		"empty choices":  "key: demo\nfields:\n  - name: a\n    kind: choice\n",
		"two phones":     "key: demo\nfields:\n  - name: a\n    kind: phone\n  - name: b\n    kind: phone\n",
		"bad replyTo":    "key: demo\nreplyTo: email\nfields:\n  - name: a\n",
		"negative min":   "key: demo\nfields:\n  - name: a\n    minLength: -1\n",
		"not a document": "key: [unclosed",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(doc), "case.yaml"); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoadFS_SkipsOtherFilesAndRejectsDuplicates(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml":    {Data: []byte("key: a\nfields:\n  - name: x\n")},
		"README.md": {Data: []byte("# not a form")},
	}
	set, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	if diff := cmp.Diff([]string{"a"}, set.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}

	fsys["b.json"] = &fstest.MapFile{Data: []byte(`{"key":"a","fields":[{"name":"y"}]}`)}
	if _, err := LoadFS(fsys); err == nil || !strings.Contains(err.Error(), "duplicate form") {
		t.Fatalf("expected duplicate form error, got %v", err)
	}
}

func TestForm_ExpandSubjectAndMessages(t *testing.T) {
	form := Form{
		Subject: "Nueva solicitud - ${name}",
		Fields:  []Field{{Name: "name", Kind: KindText}, {Name: "email", Kind: KindEmail}},
	}
	if got := form.ExpandSubject(map[string]string{"name": "Ana"}); got != "Nueva solicitud - Ana" {
		t.Fatalf("subject = %q", got)
	}
	if got := form.FailureMessage(); got != DefaultFailureMessage {
		t.Fatalf("failure message = %q", got)
	}
	if got := (Field{}).RequiredMessage(); got != DefaultRequiredMessage {
		t.Fatalf("required message = %q", got)
	}
	if got := (Field{Message: "m"}).FormatMessage(); got != "m" {
		t.Fatalf("format message fallback = %q", got)
	}
}

func TestForm_ExpandSubjectKeepsLiteralDollars(t *testing.T) {
	form := Form{
		Subject: "Cuota $20 - ${name} $name ${other} $",
		Fields:  []Field{{Name: "name", Kind: KindText}},
	}
	got := form.ExpandSubject(map[string]string{"name": "Ana", "other": "x"})
	if want := "Cuota $20 - Ana $name ${other} $"; got != want {
		t.Fatalf("subject = %q, want %q", got, want)
	}
	if got := (Form{}).ExpandSubject(map[string]string{"name": "Ana"}); got != "" {
		t.Fatalf("empty subject expanded to %q", got)
	}
}

func TestValidEmail(t *testing.T) {
	cases := map[string]bool{
		"ana@example.com":     true,
		"  ana@example.com  ": true,
		"ana@example":         false,
		"ana example@x.com":   false,
		"@example.com":        false,
		"":                    false,
	}
	for input, want := range cases {
		if got := ValidEmail(input); got != want {
			t.Errorf("ValidEmail(%q) = %v, want %v", input, got, want)
		}
	}
}
