package checkplus

import (
	"encoding/json"
	"strings"
)

const (
	statusSuccess   = "SUCCESS"
	statusRetry     = "RETRY"
	statusConfirmed = "0000"
	statusPending   = "0001"
)

// statusCode is the `code` field of provider JSON responses, which is a
// string on most endpoints and a number on some.
type statusCode string

func (c *statusCode) UnmarshalJSON(b []byte) error {
	var str string
	err := json.Unmarshal(b, &str)
	if err == nil {
		*c = statusCode(str)
		return nil
	}
	var num json.Number
	err = json.Unmarshal(b, &num)
	if err != nil {
		return err
	}
	*c = statusCode(num.String())
	return nil
}

type providerStatus struct {
	Code    statusCode `json:"code"`
	Message string     `json:"message"`
}

func decodeStatus(body []byte) (providerStatus, error) {
	var status providerStatus
	err := json.Unmarshal(body, &status)
	if err != nil {
		return providerStatus{}, parseError("code", err)
	}
	return status, nil
}

func (p providerStatus) messageOr(fallback string) string {
	msg := strings.TrimSpace(p.Message)
	if msg == "" {
		return fallback
	}
	return msg
}
