package checkplus

import "time"

// Empty is the payload of results that carry no data.
type Empty struct{}

// Result wraps the outcome of an operation. A Result with Success set to
// false is a soft failure reported by the provider (wrong captcha, wrong code,
// not confirmed yet), the caller may retry the same call. Soft failures never
// carry a payload.
type Result[T any] struct {
	Success bool
	Message string
	Data    T
}

func succeeded[T any](message string, data T) Result[T] {
	return Result[T]{Success: true, Message: message, Data: data}
}

func softFailure[T any](message string) Result[T] {
	return Result[T]{Success: false, Message: message}
}

// Gender is the normalized gender category of a verified person.
type Gender string

const (
	GenderMale   Gender = "1"
	GenderFemale Gender = "2"
)

// VerificationData is a confirmed identity.
type VerificationData struct {
	Name      string
	Birthdate time.Time
	Gender    Gender
	// PhoneNumber contains digits only.
	PhoneNumber string
	Carrier     Carrier
}

func (v *VerificationData) clone() *VerificationData {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
