package checkplus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNormalizeBirthdate(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{input: "000101", expected: "000101"},
		{input: "20000101", expected: "000101"},
		{input: "19991231", expected: "991231"},
		{input: "991231", expected: "991231"},
		{input: " 19850704 ", expected: "850704"},
	}

	for _, test := range testCases {
		result, err := NormalizeBirthdate(test.input)
		require.NoError(t, err)
		require.Equal(t, test.expected, result)
	}

	for _, invalid := range []string{"", "0001", "0001011", "200001011", "2000-01-01", "001301", "20000230", "19000229"} {
		_, err := NormalizeBirthdate(invalid)
		cpErr := requireKind(t, err, ErrValidation)
		require.Equal(t, "birthdate", cpErr.Field)
	}
}

func TestParseBirthdate(t *testing.T) {
	short, born, err := parseBirthdate("19600101")
	require.NoError(t, err)
	require.Equal(t, "600101", short)
	require.Equal(t, 1960, born.Year())

	short, born, err = parseBirthdate("000229")
	require.NoError(t, err)
	require.Equal(t, "000229", short)
	require.Equal(t, time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC), born)
}

func TestNormalizePhone(t *testing.T) {
	for _, input := range []string{"01012345678", "010-1234-5678", "0101234-5678", "-01012345678-"} {
		result, err := NormalizePhone(input)
		require.NoError(t, err)
		require.Equal(t, "01012345678", result)
	}

	for _, invalid := range []string{"", "010-123-5678", "010123456789", "010-1234-567a", "+821012345678"} {
		_, err := NormalizePhone(invalid)
		cpErr := requireKind(t, err, ErrValidation)
		require.Equal(t, "phone", cpErr.Field)
	}
}

func TestValidateCaptchaAndCode(t *testing.T) {
	answer, err := ValidateCaptcha("123456")
	require.NoError(t, err)
	require.Equal(t, "123456", answer)

	code, err := ValidateCode(" 000000 ")
	require.NoError(t, err)
	require.Equal(t, "000000", code)

	for _, invalid := range []string{"", "12345", "1234567", "12345a", "１２３４５６"} {
		_, err := ValidateCaptcha(invalid)
		cpErr := requireKind(t, err, ErrValidation)
		require.Equal(t, "captcha", cpErr.Field)

		_, err = ValidateCode(invalid)
		cpErr = requireKind(t, err, ErrValidation)
		require.Equal(t, "code", cpErr.Field)
	}
}

func TestNormalizeGender(t *testing.T) {
	for _, code := range []string{"1", "3", "5", "7"} {
		gender, err := NormalizeGender(code)
		require.NoError(t, err)
		require.Equal(t, GenderMale, gender)
	}
	for _, code := range []string{"2", "4", "6", "8"} {
		gender, err := NormalizeGender(code)
		require.NoError(t, err)
		require.Equal(t, GenderFemale, gender)
	}
	for _, code := range []string{"", "0", "9", "M"} {
		_, err := NormalizeGender(code)
		requireKind(t, err, ErrValidation)
	}
}
