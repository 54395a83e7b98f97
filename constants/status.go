package constants

// JobState is the canonical state for rows in pipeline_job.
type JobState string

// Stable values (store these exact strings in DB).
const (
	JobStateQueued        JobState = "QUEUED"
	JobStateClassifying   JobState = "CLASSIFYING"
	JobStateExtracting    JobState = "EXTRACTING"
	JobStateMapping       JobState = "MAPPING"
	JobStateQA            JobState = "QA"
	JobStateErrorRecovery JobState = "ERROR_RECOVERY"
	JobStateMerging       JobState = "MERGING"
	JobStateDone          JobState = "DONE"
	JobStateFailed        JobState = "FAILED"
	JobStateCancelled     JobState = "CANCELLED"
)

// JobStates lists every state in pipeline order, terminal states last.
var JobStates = []JobState{
	JobStateQueued,
	JobStateClassifying,
	JobStateExtracting,
	JobStateMapping,
	JobStateQA,
	JobStateErrorRecovery,
	JobStateMerging,
	JobStateDone,
	JobStateFailed,
	JobStateCancelled,
}

// Terminal reports whether a job in state s can never transition again.
func (s JobState) Terminal() bool {
	switch s {
	case JobStateDone, JobStateFailed, JobStateCancelled:
		return true
	}
	return false
}

// Progress maps a state to the percentage persisted before the stage runs.
func (s JobState) Progress() int {
	switch s {
	case JobStateQueued:
		return 0
	case JobStateClassifying:
		return 10
	case JobStateExtracting:
		return 30
	case JobStateMapping:
		return 60
	case JobStateQA, JobStateErrorRecovery:
		return 75
	case JobStateMerging:
		return 90
	case JobStateDone, JobStateFailed, JobStateCancelled:
		return 100
	}
	return 0
}

func JobStatesAsStrings() []string {
	out := make([]string, len(JobStates))
	for i, s := range JobStates {
		out[i] = string(s)
	}
	return out
}

// FieldSource identifies what produced an extracted field value.
type FieldSource string

const (
	SourceOCR  FieldSource = "ocr"
	SourceLLM  FieldSource = "llm"
	SourceRule FieldSource = "rule"
	SourceUser FieldSource = "user"
)

var FieldSources = []string{
	string(SourceOCR), string(SourceLLM), string(SourceRule), string(SourceUser),
}

// ErrorCode is the machine-readable reason recorded on a failed job.
type ErrorCode string

const (
	ErrCodeNone             ErrorCode = ""
	ErrCodeExtraction       ErrorCode = "EXTRACTION_ERROR"
	ErrCodeTransientService ErrorCode = "TRANSIENT_SERVICE_ERROR"
	ErrCodeValidation       ErrorCode = "VALIDATION_ERROR"
	ErrCodeMergeConflict    ErrorCode = "MERGE_CONFLICT"
	ErrCodeCancelled        ErrorCode = "CANCELLED"
)
