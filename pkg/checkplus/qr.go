package checkplus

import (
	"context"
	"net/http"
)

// CreateQRVerification issues a QR code the phone owner scans with the PASS
// app. The result message is the number printed under the QR code and the
// payload is the QR image. Calling it again before the verification is
// confirmed issues a fresh code.
func (s *Session) CreateQRVerification(ctx context.Context) (Result[[]byte], error) {
	err := s.m.canCreateQR()
	if err != nil {
		return Result[[]byte]{}, err
	}

	res, err := s.execute(
		s.withServiceInfo(ctx).SetFormData(map[string]string{
			"certInfoHash":    s.m.tokens.certInfoHash,
			"accTkInfo":       s.m.tokens.serviceInfo,
			"mobileCertAgree": "Y",
		}),
		StageCreateQR, http.MethodPost, pathCertification(MethodAppQR),
	)
	if err != nil {
		return Result[[]byte]{}, s.fail(ctx, report_session_create_qr, "create_qr", err)
	}
	certification, err := page(res, StageCreateQR)
	if err != nil {
		return Result[[]byte]{}, s.fail(ctx, report_session_create_qr, "create_qr", err)
	}
	number, err := extractQRNumber(certification)
	if err != nil {
		return Result[[]byte]{}, s.fail(ctx, report_session_create_qr, "create_qr", atStage(err, StageCreateQR))
	}

	res, err = s.execute(s.request(ctx), StageQRImage, http.MethodGet, pathQRImage(number))
	if err != nil {
		return Result[[]byte]{}, s.fail(ctx, report_session_create_qr, "create_qr", err)
	}

	s.transition(s.m.sent(nil))
	s.recordOutcome(ctx, "create_qr", outcomeSuccess)
	return succeeded(number, res.Body()), nil
}

// CheckQRVerification is CheckPushVerification for QR sessions, the provider
// treats both the same once the verification was issued.
func (s *Session) CheckQRVerification(ctx context.Context) (Result[*VerificationData], error) {
	return s.checkApp(ctx, "check_qr")
}
