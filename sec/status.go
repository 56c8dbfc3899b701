package sec

import "fmt"

// Status is an OSStatus result from a Security framework entry point. The
// bridge never interprets or recovers statuses; they pass through to the
// caller untouched, as errors when non-zero.
type Status int32

// Well-known status codes. The set of codes is defined by the framework;
// this is an open-world catalogue of the ones callers commonly branch on,
// not an exhaustive enumeration.
const (
	Success                  Status = 0
	ErrUnimplemented         Status = -4
	ErrParam                 Status = -50
	ErrAllocate              Status = -108
	ErrUserCanceled          Status = -128
	ErrAuthFailed            Status = -25293
	ErrDuplicateItem         Status = -25299
	ErrItemNotFound          Status = -25300
	ErrInteractionNotAllowed Status = -25308
	ErrDecode                Status = -26275
	ErrMissingEntitlement    Status = -34018
)

// Err returns nil for Success and the status itself otherwise.
func (s Status) Err() error {
	if s == Success {
		return nil
	}
	return s
}

// Error renders the framework's own message for the status when available
// (via SecCopyErrorMessageString on darwin), falling back to the numeric
// code.
func (s Status) Error() string {
	if msg := statusMessage(s); msg != "" {
		return fmt.Sprintf("sec: %s (OSStatus %d)", msg, int32(s))
	}
	return fmt.Sprintf("sec: OSStatus %d", int32(s))
}
