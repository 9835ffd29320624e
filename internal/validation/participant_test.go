package validation

import (
	"testing"
)

func validPayload() ParticipantPayload {
	salary := 1000.0
	return ParticipantPayload{
		Email:     "a@b.com",
		Firstname: "A",
		Lastname:  "B",
		DOB:       "1990-01-01",
		Work:      WorkPayload{Companyname: "X", Salary: &salary, Currency: "USD"},
		Home:      HomePayload{Country: "C", City: "D"},
	}
}

func violationFields(violations []FieldError) map[string]bool {
	fields := make(map[string]bool)
	for _, v := range violations {
		fields[v.Field] = true
	}
	return fields
}

func TestValidateCreate_ValidPayload(t *testing.T) {
	p := validPayload()
	if violations := ValidateCreate(&p); violations != nil {
		t.Fatalf("expected no violations, got %v", violations)
	}
}

func TestValidateCreate_MissingEmail(t *testing.T) {
	p := validPayload()
	p.Email = ""
	violations := ValidateCreate(&p)
	if !violationFields(violations)["email"] {
		t.Fatalf("expected email violation, got %v", violations)
	}
}

func TestValidateCreate_InvalidEmail(t *testing.T) {
	p := validPayload()
	p.Email = "not-an-email"
	violations := ValidateCreate(&p)
	if !violationFields(violations)["email"] {
		t.Fatalf("expected email violation, got %v", violations)
	}
}

func TestValidateCreate_WhitespaceOnlyNameIsEmpty(t *testing.T) {
	p := validPayload()
	p.Firstname = "   "
	violations := ValidateCreate(&p)
	if !violationFields(violations)["firstname"] {
		t.Fatalf("expected firstname violation, got %v", violations)
	}
}

func TestValidateCreate_BadDates(t *testing.T) {
	for _, dob := range []string{"not-a-date", "1990-13-01", "1990-02-30", "01-01-1990"} {
		p := validPayload()
		p.DOB = dob
		violations := ValidateCreate(&p)
		if !violationFields(violations)["dob"] {
			t.Fatalf("dob %q: expected dob violation, got %v", dob, violations)
		}
	}
}

func TestValidateCreate_MissingSalary(t *testing.T) {
	p := validPayload()
	p.Work.Salary = nil
	violations := ValidateCreate(&p)
	if !violationFields(violations)["work.salary"] {
		t.Fatalf("expected work.salary violation, got %v", violations)
	}
}

func TestValidateCreate_NegativeSalary(t *testing.T) {
	p := validPayload()
	salary := -1.0
	p.Work.Salary = &salary
	violations := ValidateCreate(&p)
	if !violationFields(violations)["work.salary"] {
		t.Fatalf("expected work.salary violation, got %v", violations)
	}
}

func TestValidateCreate_ZeroSalaryAllowed(t *testing.T) {
	p := validPayload()
	salary := 0.0
	p.Work.Salary = &salary
	if violations := ValidateCreate(&p); violations != nil {
		t.Fatalf("expected no violations for zero salary, got %v", violations)
	}
}

func TestValidateCreate_CollectsAllViolations(t *testing.T) {
	p := validPayload()
	p.Email = "nope"
	p.Firstname = ""
	p.DOB = "yesterday"
	p.Work.Currency = ""
	p.Home.City = " "

	fields := violationFields(ValidateCreate(&p))
	for _, want := range []string{"email", "firstname", "dob", "work.currency", "home.city"} {
		if !fields[want] {
			t.Fatalf("missing violation for %s, got %v", want, fields)
		}
	}
}

func TestValidateUpdate_EmailOptional(t *testing.T) {
	p := validPayload()
	p.Email = ""
	if violations := ValidateUpdate(&p); violations != nil {
		t.Fatalf("expected no violations without email on update, got %v", violations)
	}
}

func TestValidateUpdate_DetailFieldsStillRequired(t *testing.T) {
	p := validPayload()
	p.Work.Companyname = ""
	p.Home.Country = ""
	fields := violationFields(ValidateUpdate(&p))
	if !fields["work.companyname"] || !fields["home.country"] {
		t.Fatalf("expected work.companyname and home.country violations, got %v", fields)
	}
}
