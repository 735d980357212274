package validation

import (
	"errors"
	"testing"
)

type samplePayload struct {
	ID      string  `json:"id" validate:"required"`
	Code    string  `json:"code" validate:"required"`
	TaxMode string  `json:"tax_mode" validate:"omitempty,oneof=inclusive exclusive"`
	Note    *string `json:"note"`
}

func TestPayloadValid(t *testing.T) {
	p := samplePayload{ID: "a", Code: "b", TaxMode: "inclusive"}

	if err := Payload(&p); err != nil {
		t.Fatalf("payload válido não deve falhar: %v", err)
	}
}

func TestPayloadMissingFields(t *testing.T) {
	p := samplePayload{}

	err := Payload(&p)
	var missing *MissingFieldsError
	if !errors.As(err, &missing) {
		t.Fatalf("esperado MissingFieldsError, obtido %v", err)
	}

	if got := err.Error(); got != "Required fields: id, code" {
		t.Fatalf("mensagem inesperada: %s", got)
	}
}

func TestPayloadEnumError(t *testing.T) {
	p := samplePayload{ID: "a", Code: "b", TaxMode: "flat"}

	err := Payload(&p)
	var enumErr *EnumError
	if !errors.As(err, &enumErr) {
		t.Fatalf("esperado EnumError, obtido %v", err)
	}
	if enumErr.Field != "tax_mode" {
		t.Fatalf("campo esperado tax_mode, obtido %s", enumErr.Field)
	}
}

func TestPayloadMissingTakesPrecedenceOverEnum(t *testing.T) {
	p := samplePayload{TaxMode: "flat"}

	err := Payload(&p)
	var missing *MissingFieldsError
	if !errors.As(err, &missing) {
		t.Fatalf("campos ausentes têm precedência sobre enum: %v", err)
	}
}
