package checkplus

import (
	"errors"
	"fmt"
)

// Error kinds, match them with errors.Is.
var (
	// ErrSessionState means an operation was called out of order, twice, or
	// after the session was closed.
	ErrSessionState = errors.New("session state")
	// ErrNetwork means a request to the provider or the landing page failed.
	ErrNetwork = errors.New("network")
	// ErrParse means a field the handshake depends on was missing from a
	// provider response, this usually means the upstream markup changed.
	ErrParse = errors.New("parse")
	// ErrValidation means caller supplied input was malformed.
	ErrValidation = errors.New("validation")
)

// Stage identifies the request of the handshake an error happened at.
type Stage int

const (
	StageNone          Stage = 0
	StageLanding       Stage = 1
	StageGateway       Stage = 3
	StageMenu          Stage = 5
	StageMethod        Stage = 7
	StageCertification Stage = 9
	StageCaptcha       Stage = 11
	StageSendSMS       Stage = 13
	StageSendPush      Stage = 15
	StageCreateQR      Stage = 17
	StageQRImage       Stage = 19
	StageConfirmSMS    Stage = 21
	StagePoll          Stage = 23
	StageConfirm       Stage = 25
	StageResult        Stage = 27
	StageDecrypt       Stage = 29
)

var stageNames = map[Stage]string{
	StageNone:          "none",
	StageLanding:       "landing",
	StageGateway:       "gateway",
	StageMenu:          "menu",
	StageMethod:        "method",
	StageCertification: "certification",
	StageCaptcha:       "captcha",
	StageSendSMS:       "send-sms",
	StageSendPush:      "send-push",
	StageCreateQR:      "create-qr",
	StageQRImage:       "qr-image",
	StageConfirmSMS:    "confirm-sms",
	StagePoll:          "poll",
	StageConfirm:       "confirm",
	StageResult:        "result",
	StageDecrypt:       "decrypt",
}

func (s Stage) String() string {
	name, ok := stageNames[s]
	if !ok {
		return fmt.Sprintf("stage(%d)", int(s))
	}
	return name
}

// Error is the error type returned by every Session operation.
type Error struct {
	// Kind is one of ErrSessionState, ErrNetwork, ErrParse or ErrValidation.
	Kind error
	// Stage is only set for network and parse errors.
	Stage Stage
	// Field names the missing response field (parse) or the invalid input
	// (validation).
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	prefix := fmt.Sprintf("checkplus: %s", e.Kind)
	if e.Stage != StageNone {
		prefix = fmt.Sprintf("%s error at %s (%d)", prefix, e.Stage, int(e.Stage))
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s", prefix, e.Message, e.Err.Error())
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Code is the numeric stage code of the error, 0 when it has none.
func (e *Error) Code() int {
	return int(e.Stage)
}

func stateError(format string, args ...any) error {
	return &Error{Kind: ErrSessionState, Message: fmt.Sprintf(format, args...)}
}

func networkError(stage Stage, err error) error {
	return &Error{
		Kind:    ErrNetwork,
		Stage:   stage,
		Message: "request failed",
		Err:     err,
	}
}

func parseError(field string, err error) error {
	return &Error{
		Kind:    ErrParse,
		Field:   field,
		Message: fmt.Sprintf("could not find %s in response", field),
		Err:     err,
	}
}

func validationError(field, format string, args ...any) error {
	return &Error{
		Kind:    ErrValidation,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// atStage attaches the handshake stage to a parse error produced by one of
// the stage-agnostic extractors.
func atStage(err error, stage Stage) error {
	var cpErr *Error
	if errors.As(err, &cpErr) && cpErr.Stage == StageNone {
		cpErr.Stage = stage
	}
	return err
}
