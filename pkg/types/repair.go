// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RepairStatus is the outcome class of one repair attempt.
type RepairStatus string

const (
	RepairOK     RepairStatus = "OK"
	RepairDryRun RepairStatus = "DRY-RUN"
	RepairFailed RepairStatus = "FAILED"
)

// RepairOutcome is the result of processing one PDF candidate. Err is set
// only when Status is RepairFailed.
type RepairOutcome struct {
	// Changed reports whether the file on disk was replaced.
	Changed bool
	Status  RepairStatus
	Err     error
}

// String renders the outcome the way it appears in per-file log lines.
func (o RepairOutcome) String() string {
	if o.Status == RepairFailed && o.Err != nil {
		return string(o.Status) + ": " + o.Err.Error()
	}
	return string(o.Status)
}
