package checkplus

import (
	"context"
	"net/http"
	"net/url"
)

type PushRequest struct {
	Name string
	// Phone is 11 digits, hyphens are allowed.
	Phone         string
	CaptchaAnswer string
}

// SendPushVerification asks the provider to push a confirmation request to
// the PASS app of the phone owner. The identity is recovered from the
// provider once the owner confirms, see CheckPushVerification.
func (s *Session) SendPushVerification(ctx context.Context, req PushRequest) (Result[Empty], error) {
	err := s.m.canSend(MethodAppPush)
	if err != nil {
		return Result[Empty]{}, err
	}

	name, err := validateName(req.Name)
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
			"mobileNo":         phone,
			"captchaAnswer":    captcha,
		}),
		StageSendPush, http.MethodPost, pathPushSend,
	)
	if err != nil {
		return Result[Empty]{}, s.fail(ctx, report_session_send_push, "send_push", err)
	}
	status, err := decodeStatus(res.Body())
	if err != nil {
		return Result[Empty]{}, s.fail(ctx, report_session_send_push, "send_push", atStage(err, StageSendPush))
	}
	if status.Code != statusSuccess {
		msg := status.messageOr("Please enter valid identity information.")
		s.soft(ctx, report_session_send_push, "send_push", msg)
		return softFailure[Empty](msg), nil
	}

	s.transition(s.m.sent(nil))
	s.recordOutcome(ctx, "send_push", outcomeSuccess)
	return succeeded("PASS app verification sent.", Empty{}), nil
}

// CheckPushVerification polls whether the phone owner confirmed the request
// in the PASS app. Until they do it returns a soft failure, polling again is
// safe. Once confirmed the identity is recovered from the provider.
func (s *Session) CheckPushVerification(ctx context.Context) (Result[*VerificationData], error) {
	return s.checkApp(ctx, "check_push")
}

func (s *Session) checkApp(ctx context.Context, operation string) (Result[*VerificationData], error) {
	msg, err := s.m.canCheck("checking an app verification", Method.isApp, "PASS app")
	if err != nil {
		return Result[*VerificationData]{}, err
	}
	if msg != "" {
		s.soft(ctx, report_session_check_app, operation, msg)
		return softFailure[*VerificationData](msg), nil
	}

	res, err := s.execute(s.withServiceInfo(ctx), StagePoll, http.MethodPost, pathPollConfirm)
	if err != nil {
		return Result[*VerificationData]{}, s.fail(ctx, report_session_check_app, operation, err)
	}
	status, err := decodeStatus(res.Body())
	if err != nil {
		return Result[*VerificationData]{}, s.fail(ctx, report_session_check_app, operation, atStage(err, StagePoll))
	}
	code := status.Code
	if code == "" {
		code = statusPending
	}
	if code != statusConfirmed {
		msg := "The user has not completed the verification yet."
		s.soft(ctx, report_session_check_app, operation, msg, string(code))
		return softFailure[*VerificationData](msg), nil
	}

	verified, err := s.recoverVerificationData(ctx)
	if err != nil {
		return Result[*VerificationData]{}, s.fail(ctx, report_session_recover, operation, err)
	}

	s.transition(s.m.confirmed(verified))
	s.recordOutcome(ctx, operation, outcomeSuccess)
	return succeeded("Identity verified.", verified.clone()), nil
}
