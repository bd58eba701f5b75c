package checkplus

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

type SMSRequest struct {
	Name string
	// Birthdate is YYMMDD or YYYYMMDD.
	Birthdate string
	// Gender is the 7th digit of the resident registration number (1-8).
	Gender string
	// Phone is 11 digits, hyphens are allowed.
	Phone         string
	CaptchaAnswer string
}

// SendSMSVerification submits the identity and the captcha answer, on
// success the provider sends a 6 digit code to the phone.
//
// A rejected captcha or identity is a soft failure, the session stays
// initialized so the caller can fetch a new captcha and try again.
func (s *Session) SendSMSVerification(ctx context.Context, req SMSRequest) (Result[Empty], error) {
	err := s.m.canSend(MethodSMS)
	if err != nil {
		return Result[Empty]{}, err
	}

	name, err := validateName(req.Name)
	if err != nil {
		return Result[Empty]{}, err
	}
	birthdate, born, err := parseBirthdate(req.Birthdate)
	if err != nil {
		return Result[Empty]{}, err
	}
	gender, err := NormalizeGender(req.Gender)
	if err != nil {
		return Result[Empty]{}, err
	}
	phone, err := NormalizePhone(req.Phone)
	if err != nil {
		return Result[Empty]{}, err
	}
	captcha, err := ValidateCaptcha(req.CaptchaAnswer)
	if err != nil {
		return Result[Empty]{}, err
	}

	res, err := s.execute(
		s.withServiceInfo(ctx).SetFormData(map[string]string{
			"userNameEncoding": url.PathEscape(name),
			"userName":         name,
			"myNum1":           birthdate,
			"myNum2":           strings.TrimSpace(req.Gender),
			"mobileNo":         phone,
			"captchaAnswer":    captcha,
		}),
		StageSendSMS, http.MethodPost, pathSMSSend,
	)
	if err != nil {
		return Result[Empty]{}, s.fail(ctx, report_session_send_sms, "send_sms", err)
	}
	status, err := decodeStatus(res.Body())
	if err != nil {
		return Result[Empty]{}, s.fail(ctx, report_session_send_sms, "send_sms", atStage(err, StageSendSMS))
	}
	if status.Code != statusSuccess {
		msg := status.messageOr("Please enter valid identity information.")
		s.soft(ctx, report_session_send_sms, "send_sms", msg)
		return softFailure[Empty](msg), nil
	}

	s.transition(s.m.sent(&VerificationData{
		Name:        name,
		Birthdate:   born,
		Gender:      gender,
		PhoneNumber: phone,
		Carrier:     s.carrier,
	}))
	s.recordOutcome(ctx, "send_sms", outcomeSuccess)
	return succeeded("SMS verification sent.", Empty{}), nil
}

// CheckSMSVerification confirms the code sent by SendSMSVerification and
// returns the identity submitted with it.
func (s *Session) CheckSMSVerification(ctx context.Context, code string) (Result[*VerificationData], error) {
	msg, err := s.m.canCheck("checking an sms verification", func(m Method) bool {
		return m == MethodSMS
	}, "sms")
	if err != nil {
		return Result[*VerificationData]{}, err
	}
	if msg != "" {
		s.soft(ctx, report_session_check_sms, "check_sms", msg)
		return softFailure[*VerificationData](msg), nil
	}

	code, err = ValidateCode(code)
	if err != nil {
		return Result[*VerificationData]{}, err
	}

	res, err := s.execute(
		s.withServiceInfo(ctx).
			SetHeader(headerRequestedBy, "XMLHTTPRequest").
			SetFormData(map[string]string{
				"certCode": code,
			}),
		StageConfirmSMS, http.MethodPost, pathSMSConfirm,
	)
	if err != nil {
		return Result[*VerificationData]{}, s.fail(ctx, report_session_check_sms, "check_sms", err)
	}
	status, err := decodeStatus(res.Body())
	if err != nil {
		return Result[*VerificationData]{}, s.fail(ctx, report_session_check_sms, "check_sms", atStage(err, StageConfirmSMS))
	}

	switch status.Code {
	case statusSuccess:
	case statusRetry:
		msg := "Please enter the correct verification code."
		s.soft(ctx, report_session_check_sms, "check_sms", msg)
		return softFailure[*VerificationData](msg), nil
	default:
		msg := status.messageOr("Something went wrong while confirming the verification.")
		s.soft(ctx, report_session_check_sms, "check_sms", msg)
		return softFailure[*VerificationData](msg), nil
	}

	s.transition(s.m.confirmed(s.m.verified))
	s.recordOutcome(ctx, "check_sms", outcomeSuccess)
	return succeeded("Identity verified.", s.m.verified.clone()), nil
}
