package importer

import "errors"

// Kind classifies why an import stopped.
type Kind string

const (
	KindInvalidInput         Kind = "InvalidInput"
	KindConfigurationMissing Kind = "ConfigurationMissing"
	KindFetchFailed          Kind = "FetchFailed"
	KindExtractionIncomplete Kind = "ExtractionIncomplete"
	KindReconciliationFailed Kind = "ReconciliationFailed"
	KindPersistenceFailed    Kind = "PersistenceFailed"
)

type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first *Error in err's chain, or "".
func KindOf(err error) Kind {
	var ie *Error
	if errors.As(err, &ie) {
		return ie.Kind
	}
	return ""
}
