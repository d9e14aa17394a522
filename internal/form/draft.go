package form

import (
	"context"
	"errors"

	"github.com/aishnar/aishnar-leads/internal/usecase"
)

var (
	ErrUnknownField     = errors.New("unknown form field")
	ErrAlreadySubmitted = errors.New("draft already submitted")
)

// Submitter is what a draft hands its normalized input to on submit.
type Submitter interface {
	Execute(ctx context.Context, input usecase.SubmitLeadInput) (*usecase.SubmitLeadOutput, error)
}

// Draft holds one in-progress submission and its per-field error map across
// an editing session. Editing a field optimistically clears that field's
// error; the other fields keep theirs until the next submit re-validates.
// Methods are not safe for concurrent use; the Store serializes access.
type Draft struct {
	Input     usecase.SubmitLeadInput `json:"input"`
	Errors    map[string]string       `json:"errors"`
	Submitted bool                    `json:"submitted"`
}

func NewDraft() *Draft {
	return &Draft{Errors: make(map[string]string)}
}

// SetField replaces one text field's value. One explicit case per field keeps
// the fixed field set exhaustively checked; unknown names are an error, not a
// silent no-op.
func (d *Draft) SetField(name, value string) error {
	if d.Submitted {
		return ErrAlreadySubmitted
	}

	switch name {
	case "full_name":
		d.Input.FullName = value
	case "email":
		d.Input.Email = value
	case "phone":
		d.Input.Phone = value
	case "company_name":
		d.Input.CompanyName = value
	case "website":
		d.Input.Website = value
	case "industry":
		d.Input.Industry = value
	case "company_size":
		d.Input.CompanySize = value
	case "monthly_revenue":
		d.Input.MonthlyRevenue = value
	case "years_in_operation":
		d.Input.YearsInOperation = value
	case "biggest_challenge":
		d.Input.BiggestChallenge = value
	case "tools_software":
		d.Input.ToolsSoftware = value
	case "kpi_tracking":
		d.Input.KPITracking = value
	case "interest_in_paid":
		d.Input.InterestInPaid = value
	case "preferred_time":
		d.Input.PreferredTime = value
	default:
		return ErrUnknownField
	}

	delete(d.Errors, name)
	return nil
}

func (d *Draft) SetConsent(v bool) error {
	if d.Submitted {
		return ErrAlreadySubmitted
	}
	d.Input.Consent = v
	delete(d.Errors, "consent")
	return nil
}

// ToggleProblem removes the tag if present, appends it otherwise. The
// resulting order is the insertion order of toggles, not the canonical list
// order.
func (d *Draft) ToggleProblem(tag string) error {
	if d.Submitted {
		return ErrAlreadySubmitted
	}

	for i, p := range d.Input.BusinessProblems {
		if p == tag {
			d.Input.BusinessProblems = append(
				d.Input.BusinessProblems[:i], d.Input.BusinessProblems[i+1:]...)
			return nil
		}
	}
	d.Input.BusinessProblems = append(d.Input.BusinessProblems, tag)
	return nil
}

// Submit hands the draft to the submitter. Validation failure replaces the
// whole error map and leaves the draft editable; success makes the draft
// terminal for this session.
func (d *Draft) Submit(ctx context.Context, submitter Submitter) (*usecase.SubmitLeadOutput, error) {
	if d.Submitted {
		return nil, ErrAlreadySubmitted
	}

	out, err := submitter.Execute(ctx, d.Input)
	if err != nil {
		var verrs usecase.ValidationErrors
		if errors.As(err, &verrs) {
			d.Errors = verrs.Fields()
		}
		return nil, err
	}

	d.Errors = make(map[string]string)
	d.Submitted = true
	return out, nil
}
