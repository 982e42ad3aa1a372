package domain

// Skip reasons surfaced in pass reports. Skips are expected conditions, not
// errors: the record cannot be reconciled and the pass moves on.
const (
	SkipReasonMissingBuyer    = "missing_buyer"
	SkipReasonNoVendor        = "no_vendor"
	SkipReasonNoProducts      = "no_products"
	SkipReasonVendorAmbiguous = "vendor_unresolved_strict"
	SkipReasonNoRecipient     = "no_matching_recipient"
)

type Skip struct {
	Reference string `json:"reference"`
	Reason    string `json:"reason"`
}

type Failure struct {
	Reference string `json:"reference"`
	Error     string `json:"error"`
}

// PassReport summarizes one reconciliation pass. Skipped includes
// already-synced records; Skips lists only the flagged reasons above so the
// report stays small on steady-state re-runs.
type PassReport struct {
	Created  int       `json:"created"`
	Updated  int       `json:"updated"`
	Skipped  int       `json:"skipped"`
	Failed   int       `json:"failed"`
	Skips    []Skip    `json:"skips,omitempty"`
	Failures []Failure `json:"failures,omitempty"`
}

func (r *PassReport) AddSkip(reference, reason string) {
	r.Skipped++
	r.Skips = append(r.Skips, Skip{Reference: reference, Reason: reason})
}

func (r *PassReport) AddFailure(reference string, err error) {
	r.Failed++
	r.Failures = append(r.Failures, Failure{Reference: reference, Error: err.Error()})
}

// Report is the result of a full sync: Pass A then Pass B.
type Report struct {
	Payments PassReport `json:"payments"`
	Payouts  PassReport `json:"payouts"`
}
