package checkplus

import "fmt"

// State is the position of a Session in the handshake.
type State int

const (
	StateUninitialized State = iota
	StateInitialized
	StateVerificationSent
	StateConfirmed
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateVerificationSent:
		return "verification-sent"
	case StateConfirmed:
		return "confirmed"
	case StateClosed:
		return "closed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// tokens are the opaque values issued by the provider during Init that have
// to be echoed back on later calls.
type tokens struct {
	serviceInfo  string
	certInfoHash string
	// empty for qr sessions
	captchaVersion string
	landingURL     string
}

// machine is the whole mutable state of a session, transitions return a new
// machine instead of flipping individual flags.
type machine struct {
	state    State
	method   Method
	tokens   tokens
	verified *VerificationData
}

func (m machine) open() error {
	if m.state == StateClosed {
		return stateError("session is closed")
	}
	return nil
}

func (m machine) canInit() error {
	err := m.open()
	if err != nil {
		return err
	}
	if m.state != StateUninitialized {
		return stateError("session is already initialized")
	}
	return nil
}

func (m machine) initialized(method Method, t tokens) machine {
	return machine{
		state:  StateInitialized,
		method: method,
		tokens: t,
	}
}

func (m machine) requireInitialized(action string) error {
	err := m.open()
	if err != nil {
		return err
	}
	if m.state == StateUninitialized {
		return stateError("%s requires an initialized session", action)
	}
	return nil
}

func (m machine) canRetrieveCaptcha() error {
	err := m.requireInitialized("retrieving a captcha")
	if err != nil {
		return err
	}
	if !m.method.HasCaptcha() {
		return stateError("%s sessions have no captcha stage", m.method)
	}
	return nil
}

func (m machine) canSend(method Method) error {
	err := m.requireInitialized(fmt.Sprintf("sending a %s verification", method))
	if err != nil {
		return err
	}
	if m.method != method {
		return stateError(
			"sending a %s verification requires a session initialized with %s, this one uses %s",
			method, method, m.method,
		)
	}
	if m.state != StateInitialized {
		return stateError("verification was already sent")
	}
	return nil
}

func (m machine) canCreateQR() error {
	err := m.requireInitialized("creating a qr verification")
	if err != nil {
		return err
	}
	if m.method != MethodAppQR {
		return stateError("creating a qr verification requires a session initialized with %s, this one uses %s", MethodAppQR, m.method)
	}
	if m.state == StateConfirmed {
		return stateError("verification was already confirmed")
	}
	return nil
}

// canCheck returns a non-empty soft failure message when the check cannot
// reach the provider yet, and an error when the session is unusable.
func (m machine) canCheck(action string, accepts func(Method) bool, expected string) (string, error) {
	err := m.requireInitialized(action)
	if err != nil {
		return "", err
	}
	if m.state == StateInitialized {
		return "Verification has not been sent yet.", nil
	}
	if !accepts(m.method) {
		return fmt.Sprintf("This session is not using %s verification.", expected), nil
	}
	return "", nil
}

func (m machine) sent(verified *VerificationData) machine {
	m.state = StateVerificationSent
	m.verified = verified
	return m
}

func (m machine) confirmed(verified *VerificationData) machine {
	m.state = StateConfirmed
	m.verified = verified
	return m
}

func (m machine) closed() machine {
	m.state = StateClosed
	return m
}
