package checkplus

import (
	"strings"
	"time"
)

func isDigits(s string) bool {
	return digitsRegex.MatchString(s)
}

// NormalizeBirthdate accepts YYMMDD or YYYYMMDD and returns YYMMDD.
func NormalizeBirthdate(birthdate string) (string, error) {
	short, _, err := parseBirthdate(birthdate)
	return short, err
}

// parseBirthdate returns the YYMMDD form sent to the provider and the
// calendar date. An 8 digit input keeps its century in the date, a 6 digit
// input goes through the two digit year pivot of time.Parse.
func parseBirthdate(birthdate string) (string, time.Time, error) {
	birthdate = strings.TrimSpace(birthdate)
	if !isDigits(birthdate) {
		return "", time.Time{}, validationError("birthdate", "birthdate must only contain digits")
	}

	layout := "060102"
	switch len(birthdate) {
	case 6:
	case 8:
		layout = "20060102"
	default:
		return "", time.Time{}, validationError("birthdate", "birthdate must be YYMMDD or YYYYMMDD, got %d digits", len(birthdate))
	}

	born, err := time.Parse(layout, birthdate)
	if err != nil {
		return "", time.Time{}, validationError("birthdate", "birthdate %s is not a calendar date", birthdate)
	}
	return born.Format("060102"), born, nil
}

// NormalizePhone strips hyphens from a phone number, the result must be
// exactly 11 digits.
func NormalizePhone(phone string) (string, error) {
	phone = strings.ReplaceAll(strings.TrimSpace(phone), "-", "")
	if len(phone) != 11 || !isDigits(phone) {
		return "", validationError("phone", "phone number must have exactly 11 digits")
	}
	return phone, nil
}

// ValidateCaptcha checks that a captcha answer is exactly 6 digits.
func ValidateCaptcha(answer string) (string, error) {
	return sixDigits("captcha", answer)
}

// ValidateCode checks that an SMS confirmation code is exactly 6 digits.
func ValidateCode(code string) (string, error) {
	return sixDigits("code", code)
}

func sixDigits(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if len(value) != 6 || !isDigits(value) {
		return "", validationError(field, "%s must be exactly 6 digits", field)
	}
	return value, nil
}

// NormalizeGender maps the gender digit of a resident registration number
// (1-8) to a category, odd codes are male and even codes are female.
func NormalizeGender(code string) (Gender, error) {
	switch strings.TrimSpace(code) {
	case "1", "3", "5", "7":
		return GenderMale, nil
	case "2", "4", "6", "8":
		return GenderFemale, nil
	}
	return "", validationError("gender", "gender code must be a digit from 1 to 8")
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", validationError("name", "name must not be empty")
	}
	return name, nil
}
