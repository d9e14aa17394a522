package usecase

import (
	"fmt"
	"net/mail"
	"strings"
)

// Length limits shared with the stored column definitions.
const (
	MaxFullName         = 100
	MaxEmail            = 255
	MaxPhone            = 30
	MaxCompanyName      = 200
	MaxWebsite          = 500
	MaxYearsInOperation = 20
	MaxFreeText         = 2000
	MaxPreferredTime    = 200
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is the full set of violations for one submit attempt.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "; ")
}

// Fields maps field name to a single message suitable for display next to
// the input. The first rule that failed for a field wins.
func (e ValidationErrors) Fields() map[string]string {
	out := make(map[string]string, len(e))
	for _, v := range e {
		if _, ok := out[v.Field]; !ok {
			out[v.Field] = v.Message
		}
	}
	return out
}

// ValidateLeadInput checks every field independently and collects all
// violations, not just the first. Unknown business-problem tags are accepted
// as-is: the form only offers the canonical list, but nothing stored is
// rejected for carrying an older tag.
func ValidateLeadInput(input SubmitLeadInput) ValidationErrors {
	var errors ValidationErrors

	fullName := strings.TrimSpace(input.FullName)
	if fullName == "" {
		errors = append(errors, ValidationError{"full_name", "Full name is required"})
	} else if len(fullName) > MaxFullName {
		errors = append(errors, ValidationError{"full_name", fmt.Sprintf("must not exceed %d characters", MaxFullName)})
	}

	email := strings.TrimSpace(input.Email)
	if email == "" {
		errors = append(errors, ValidationError{"email", "Email is required"})
	} else if _, err := mail.ParseAddress(email); err != nil {
		errors = append(errors, ValidationError{"email", "Invalid email address"})
	} else if len(email) > MaxEmail {
		errors = append(errors, ValidationError{"email", fmt.Sprintf("must not exceed %d characters", MaxEmail)})
	}

	companyName := strings.TrimSpace(input.CompanyName)
	if companyName == "" {
		errors = append(errors, ValidationError{"company_name", "Company name is required"})
	} else if len(companyName) > MaxCompanyName {
		errors = append(errors, ValidationError{"company_name", fmt.Sprintf("must not exceed %d characters", MaxCompanyName)})
	}

	if len(input.Phone) > MaxPhone {
		errors = append(errors, ValidationError{"phone", fmt.Sprintf("must not exceed %d characters", MaxPhone)})
	}
	if len(input.Website) > MaxWebsite {
		errors = append(errors, ValidationError{"website", fmt.Sprintf("must not exceed %d characters", MaxWebsite)})
	}
	if len(input.YearsInOperation) > MaxYearsInOperation {
		errors = append(errors, ValidationError{"years_in_operation", fmt.Sprintf("must not exceed %d characters", MaxYearsInOperation)})
	}
	if len(input.BiggestChallenge) > MaxFreeText {
		errors = append(errors, ValidationError{"biggest_challenge", fmt.Sprintf("must not exceed %d characters", MaxFreeText)})
	}
	if len(input.ToolsSoftware) > MaxFreeText {
		errors = append(errors, ValidationError{"tools_software", fmt.Sprintf("must not exceed %d characters", MaxFreeText)})
	}
	if len(input.PreferredTime) > MaxPreferredTime {
		errors = append(errors, ValidationError{"preferred_time", fmt.Sprintf("must not exceed %d characters", MaxPreferredTime)})
	}

	if !input.Consent {
		errors = append(errors, ValidationError{"consent", "You must agree to be contacted"})
	}

	return errors
}
