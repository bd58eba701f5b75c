package checkplus

import (
	"context"
	"net/http"
)

// RetrieveCaptcha returns the captcha image that has to be answered when
// sending an sms or push verification. Fetching it again yields a new image.
func (s *Session) RetrieveCaptcha(ctx context.Context) (Result[[]byte], error) {
	err := s.m.canRetrieveCaptcha()
	if err != nil {
		return Result[[]byte]{}, err
	}

	res, err := s.execute(
		s.request(ctx),
		StageCaptcha, http.MethodGet, pathCaptchaImage(s.m.tokens.captchaVersion),
	)
	if err != nil {
		return Result[[]byte]{}, s.fail(ctx, report_session_retrieve_captcha, "retrieve_captcha", err)
	}

	s.recordOutcome(ctx, "retrieve_captcha", outcomeSuccess)
	return succeeded("Captcha image retrieved.", res.Body()), nil
}
