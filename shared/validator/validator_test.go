package validator_test

import (
	"strings"
	"testing"

	"demobook/shared/failure"
	"demobook/shared/validator"
)

// Test struct mirroring a typical request body
type SubmissionTestStruct struct {
	Name  string `validate:"required" json:"name"`
	Email string `validate:"required,emailshape" json:"email"`
	Phone string `validate:"omitempty,max=50" json:"phone"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *SubmissionTestStruct
		expectError bool
		wantMessage string
	}{
		{
			name: "valid struct",
			data: &SubmissionTestStruct{
				Name:  "Ada Lovelace",
				Email: "ada@example.com",
			},
			expectError: false,
		},
		{
			name: "missing name",
			data: &SubmissionTestStruct{
				Email: "ada@example.com",
			},
			expectError: true,
			wantMessage: "name is required",
		},
		{
			name: "missing email",
			data: &SubmissionTestStruct{
				Name: "Ada Lovelace",
			},
			expectError: true,
			wantMessage: "email is required",
		},
		{
			name: "invalid email shape",
			data: &SubmissionTestStruct{
				Name:  "Ada Lovelace",
				Email: "not-an-email",
			},
			expectError: true,
			wantMessage: "email must be a valid email address",
		},
		{
			name: "phone too long",
			data: &SubmissionTestStruct{
				Name:  "Ada Lovelace",
				Email: "ada@example.com",
				Phone: strings.Repeat("9", 51),
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if !tt.expectError {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}

				return
			}

			if err == nil {
				t.Fatal("expected an error, got nil")
			}

			if code := failure.GetCode(err); code != 400 {
				t.Errorf("expected failure code 400, got %d", code)
			}

			if tt.wantMessage != "" && err.Error() != tt.wantMessage {
				t.Errorf("expected message %q, got %q", tt.wantMessage, err.Error())
			}
		})
	}
}

func TestEmailShape(t *testing.T) {
	valid := []string{
		"ada@example.com",
		"a@b.c",
		"first.last@sub.domain.io",
		"weird+tag@example.co.uk",
	}

	invalid := []string{
		"",
		"foo",
		"foo@",
		"@bar.com",
		"foo@bar",
		"two@@example.com",
		"has space@example.com",
		"trailing@example.com ",
	}

	for _, email := range valid {
		if err := validator.ValidateVar(email, "emailshape"); err != nil {
			t.Errorf("expected %q to be accepted, got %v", email, err)
		}
	}

	for _, email := range invalid {
		if err := validator.ValidateVar(email, "emailshape"); err == nil {
			t.Errorf("expected %q to be rejected", email)
		}
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		body := `{"name":"Ada Lovelace","email":"ada@example.com"}`

		data := SubmissionTestStruct{}
		if err := validator.Validate(strings.NewReader(body), &data); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if data.Name != "Ada Lovelace" {
			t.Errorf("expected decoded name, got %q", data.Name)
		}
	})

	t.Run("malformed JSON", func(t *testing.T) {
		data := SubmissionTestStruct{}
		err := validator.Validate(strings.NewReader(`{"name": `), &data)

		if err == nil {
			t.Fatal("expected an error, got nil")
		}

		if code := failure.GetCode(err); code != 400 {
			t.Errorf("expected failure code 400, got %d", code)
		}
	})

	t.Run("valid JSON failing validation", func(t *testing.T) {
		data := SubmissionTestStruct{}
		err := validator.Validate(strings.NewReader(`{"email":"ada@example.com"}`), &data)

		if err == nil {
			t.Fatal("expected an error, got nil")
		}

		if err.Error() != "name is required" {
			t.Errorf("expected message %q, got %q", "name is required", err.Error())
		}
	})
}
