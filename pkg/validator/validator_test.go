package validator

import (
	"testing"

	"github.com/google/uuid"
)

type sample struct {
	RefID uuid.UUID `validate:"uuid_required"`
	Name  string    `validate:"required"`
}

func TestValidateStruct(t *testing.T) {
	ok := sample{RefID: uuid.New(), Name: "x"}
	if errs := ValidateStruct(ok); len(errs) != 0 {
		t.Fatalf("unexpected errors: %+v", errs)
	}

	missing := sample{}
	errs := ValidateStruct(missing)
	if len(errs) != 2 {
		t.Fatalf("errors = %d, want 2", len(errs))
	}
}

func TestUUIDRequiredRejectsNil(t *testing.T) {
	bad := sample{RefID: uuid.Nil, Name: "x"}
	errs := ValidateStruct(bad)
	if len(errs) != 1 || errs[0].Tag != "uuid_required" {
		t.Fatalf("errors = %+v, want single uuid_required failure", errs)
	}
}

func TestFirstError(t *testing.T) {
	if err := FirstError(sample{RefID: uuid.New(), Name: "x"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := FirstError(sample{RefID: uuid.New()}); err == nil {
		t.Fatal("expected error for missing name")
	}
}
