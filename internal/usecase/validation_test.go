package usecase_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aishnar/aishnar-leads/internal/usecase"
)

func validInput() usecase.SubmitLeadInput {
	return usecase.SubmitLeadInput{
		FullName:    "Rahul Sharma",
		Email:       "rahul@company.in",
		CompanyName: "Sharma Enterprises Pvt. Ltd.",
		Consent:     true,
	}
}

func TestValidateLeadInputAcceptsMinimalLead(t *testing.T) {
	errs := usecase.ValidateLeadInput(validInput())
	assert.Empty(t, errs)
}

func TestValidateLeadInputConsentRequired(t *testing.T) {
	input := validInput()
	input.Consent = false

	errs := usecase.ValidateLeadInput(input)

	fields := errs.Fields()
	assert.Len(t, fields, 1)
	assert.Equal(t, "You must agree to be contacted", fields["consent"])
}

func TestValidateLeadInputEmailFormat(t *testing.T) {
	input := validInput()
	input.Email = "not-an-email"

	fields := usecase.ValidateLeadInput(input).Fields()
	assert.Equal(t, "Invalid email address", fields["email"])

	input.Email = "a@b.co"
	assert.Empty(t, usecase.ValidateLeadInput(input))
}

func TestValidateLeadInputCollectsAllViolations(t *testing.T) {
	input := validInput()
	input.FullName = "   "
	input.CompanyName = ""

	fields := usecase.ValidateLeadInput(input).Fields()

	assert.Contains(t, fields, "full_name")
	assert.Contains(t, fields, "company_name")
	assert.Equal(t, "Full name is required", fields["full_name"])
	assert.Equal(t, "Company name is required", fields["company_name"])
}

func TestValidateLeadInputLengthCaps(t *testing.T) {
	input := validInput()
	input.FullName = strings.Repeat("a", 101)
	input.Phone = strings.Repeat("9", 31)
	input.Website = strings.Repeat("w", 501)
	input.YearsInOperation = strings.Repeat("5", 21)
	input.BiggestChallenge = strings.Repeat("c", 2001)
	input.ToolsSoftware = strings.Repeat("t", 2001)
	input.PreferredTime = strings.Repeat("p", 201)

	fields := usecase.ValidateLeadInput(input).Fields()

	for _, field := range []string{
		"full_name", "phone", "website", "years_in_operation",
		"biggest_challenge", "tools_software", "preferred_time",
	} {
		assert.Contains(t, fields, field, "expected a length error for %s", field)
		assert.Contains(t, fields[field], "must not exceed")
	}
}

func TestValidateLeadInputTrimsBeforeLengthCheck(t *testing.T) {
	input := validInput()
	// 100 significant chars padded with whitespace must pass.
	input.FullName = "  " + strings.Repeat("a", 100) + "  "

	assert.Empty(t, usecase.ValidateLeadInput(input))
}

func TestValidateLeadInputUnknownProblemTagsPass(t *testing.T) {
	input := validInput()
	input.BusinessProblems = []string{"Cost cutting", "Some legacy tag"}

	assert.Empty(t, usecase.ValidateLeadInput(input))
}
