package model

// BatchPhase is the lifecycle phase of a batch run
type BatchPhase string

const (
	// BatchPhaseIdle means no batch is running and input controls are enabled
	BatchPhaseIdle BatchPhase = "Idle"

	// BatchPhaseRunning means items are being drained one at a time
	BatchPhaseRunning BatchPhase = "Running"
)

// String returns the string representation of BatchPhase
func (p BatchPhase) String() string {
	return string(p)
}

// IsRunning returns true while a batch is draining
func (p BatchPhase) IsRunning() bool {
	return p == BatchPhaseRunning
}

// ItemOutcome describes how a single queue item ended
type ItemOutcome string

const (
	// ItemOutcomeRenamed means the file was downloaded and renamed to its sanitized name
	ItemOutcomeRenamed ItemOutcome = "Renamed"

	// ItemOutcomeDownloaded means the download finished but no file was found to rename
	ItemOutcomeDownloaded ItemOutcome = "Downloaded"

	// ItemOutcomeFailed means the extractor or the rename step returned an error
	ItemOutcomeFailed ItemOutcome = "Failed"
)

// String returns the string representation of ItemOutcome
func (o ItemOutcome) String() string {
	return string(o)
}

// IsFailure returns true for failed items
func (o ItemOutcome) IsFailure() bool {
	return o == ItemOutcomeFailed
}
