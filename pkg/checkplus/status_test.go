package checkplus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeStatus(t *testing.T) {
	testCases := []struct {
		body     string
		code     statusCode
		message  string
		fallback string
	}{
		{body: `{"code":"SUCCESS","message":"ok"}`, code: statusSuccess, message: "ok"},
		{body: `{"code":"RETRY"}`, code: statusRetry, message: "fallback"},
		{body: `{"code":1,"message":"  "}`, code: "1", message: "fallback"},
		{body: `{"code":null}`, code: "", message: "fallback"},
		{body: `{}`, code: "", message: "fallback"},
	}

	for _, test := range testCases {
		status, err := decodeStatus([]byte(test.body))
		require.NoError(t, err)
		require.Equal(t, test.code, status.Code)
		require.Equal(t, test.message, status.messageOr("fallback"))
	}

	for _, invalid := range []string{`<html>error</html>`, `{"code":{}}`, ``} {
		_, err := decodeStatus([]byte(invalid))
		cpErr := requireKind(t, err, ErrParse)
		require.Equal(t, "code", cpErr.Field)
	}
}
