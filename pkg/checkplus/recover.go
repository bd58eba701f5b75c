package checkplus

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// fields written by the landing page into its result form once it decrypted
// the provider response
const (
	fieldName      = "NICE_NAME"
	fieldGender    = "NICE_GENDER"
	fieldBirthdate = "NICE_BIRTHEDATE"
	fieldPhone     = "NICE_MOBILENO"
)

// recoverVerificationData fetches the identity confirmed in the PASS app:
// the provider hands out an encrypted query string which the landing page
// decrypts and renders into form assignments.
func (s *Session) recoverVerificationData(ctx context.Context) (*VerificationData, error) {
	_, err := s.execute(s.withServiceInfo(ctx), StageConfirm, http.MethodPost, pathConfirm(s.m.method))
	if err != nil {
		return nil, err
	}

	res, err := s.execute(
		s.request(ctx).SetFormData(map[string]string{
			"accTkInfo": s.m.tokens.serviceInfo,
		}),
		StageResult, http.MethodPost, pathResultSend,
	)
	if err != nil {
		return nil, err
	}
	result, err := page(res, StageResult)
	if err != nil {
		return nil, err
	}
	query, err := ExtractScriptConst(result, "queryString")
	if err != nil {
		return nil, atStage(err, StageResult)
	}

	res, err = s.execute(s.request(ctx), StageDecrypt, http.MethodGet, withQuery(s.m.tokens.landingURL, query))
	if err != nil {
		return nil, err
	}
	decrypted, err := page(res, StageDecrypt)
	if err != nil {
		return nil, err
	}

	verified, err := parseDecryptedPage(decrypted)
	if err != nil {
		return nil, atStage(err, StageDecrypt)
	}
	verified.Carrier = s.carrier
	return verified, nil
}

func parseDecryptedPage(text string) (*VerificationData, error) {
	values := map[string]string{}
	for _, field := range []string{fieldName, fieldGender, fieldBirthdate, fieldPhone} {
		v, err := ExtractFormValue(text, field)
		if err != nil {
			return nil, err
		}
		values[field] = strings.TrimSpace(v)
	}

	born, err := time.Parse("20060102", values[fieldBirthdate])
	if err != nil {
		return nil, parseError(fieldBirthdate, err)
	}
	gender, err := providerGender(values[fieldGender])
	if err != nil {
		return nil, parseError(fieldGender, err)
	}
	phone := strings.ReplaceAll(values[fieldPhone], "-", "")
	if !isDigits(phone) {
		return nil, parseError(fieldPhone, fmt.Errorf("phone number %q is not numeric", phone))
	}

	return &VerificationData{
		Name:        values[fieldName],
		Birthdate:   born,
		Gender:      gender,
		PhoneNumber: phone,
	}, nil
}

// providerGender normalizes the decrypted gender, which is "1"/"0" for
// male/female or a registration number digit.
func providerGender(value string) (Gender, error) {
	if value == "0" {
		return GenderFemale, nil
	}
	return NormalizeGender(value)
}

func withQuery(landingURL, query string) string {
	query = strings.TrimPrefix(query, "?")
	if strings.Contains(landingURL, "?") {
		return landingURL + "&" + query
	}
	return landingURL + "?" + query
}
