package checkplus

import (
	"context"
	"fmt"
	"net/http"
)

// Init runs the handshake up to the point where the chosen method is ready
// to send a verification: it fetches the landing page, opens a session at
// the provider gateway, selects the carrier and the method.
//
// landingURL may be empty, Options.LandingURL or DefaultLandingURL is used
// then. A session can only be initialized once, a failed Init leaves the
// session uninitialized.
func (s *Session) Init(ctx context.Context, method Method, landingURL string) (Result[Empty], error) {
	err := s.m.canInit()
	if err != nil {
		return Result[Empty]{}, err
	}
	method, err = ParseMethod(string(method))
	if err != nil {
		return Result[Empty]{}, err
	}
	if landingURL == "" {
		landingURL = s.landingURL
	}

	t, err := s.handshake(ctx, method, landingURL)
	if err != nil {
		return Result[Empty]{}, s.fail(ctx, report_session_init, "init", err)
	}

	s.transition(s.m.initialized(method, t))
	s.recordOutcome(ctx, "init", outcomeSuccess)
	return succeeded("Session initialized.", Empty{}), nil
}

func (s *Session) handshake(ctx context.Context, method Method, landingURL string) (tokens, error) {
	t := tokens{landingURL: landingURL}

	// a retried Init must not carry the gateway cookies of a failed attempt
	err := s.resetCookies()
	if err != nil {
		return tokens{}, err
	}

	res, err := s.execute(s.request(ctx), StageLanding, http.MethodGet, landingURL)
	if err != nil {
		return tokens{}, err
	}
	landing, err := page(res, StageLanding)
	if err != nil {
		return tokens{}, err
	}
	m, err := ExtractHiddenInput(landing, "m")
	if err != nil {
		return tokens{}, atStage(err, StageLanding)
	}
	encodeData, err := ExtractHiddenInput(landing, "EncodeData")
	if err != nil {
		return tokens{}, atStage(err, StageLanding)
	}

	s.setCorrelationCookie()

	res, err = s.execute(
		s.request(ctx).SetFormData(map[string]string{
			"m":          m,
			"EncodeData": encodeData,
		}),
		StageGateway, http.MethodPost, pathGateway,
	)
	if err != nil {
		return tokens{}, err
	}
	gateway, err := page(res, StageGateway)
	if err != nil {
		return tokens{}, err
	}
	t.serviceInfo, err = ExtractScriptConst(gateway, "SERVICE_INFO")
	if err != nil {
		return tokens{}, atStage(err, StageGateway)
	}

	// the menu response is irrelevant, the request only opens the gateway session
	_, err = s.execute(
		s.request(ctx).SetFormData(map[string]string{
			"accTkInfo": t.serviceInfo,
		}),
		StageMenu, http.MethodPost, pathMenu,
	)
	if err != nil {
		return tokens{}, err
	}

	res, err = s.execute(
		s.request(ctx).SetFormData(map[string]string{
			"accTkInfo":      t.serviceInfo,
			"selectMobileCo": string(s.carrier),
			"os":             platformOS,
		}),
		StageMethod, http.MethodPost, pathMethod,
	)
	if err != nil {
		return tokens{}, err
	}
	methodPage, err := page(res, StageMethod)
	if err != nil {
		return tokens{}, err
	}
	t.certInfoHash, err = ExtractHiddenInput(methodPage, "certInfoHash")
	if err != nil {
		return tokens{}, atStage(err, StageMethod)
	}

	res, err = s.execute(
		s.request(ctx).SetFormData(map[string]string{
			"certInfoHash":    t.certInfoHash,
			"accTkInfo":       t.serviceInfo,
			"mobileCertAgree": "Y",
		}),
		StageCertification, http.MethodPost, pathCertification(method),
	)
	if err != nil {
		return tokens{}, err
	}

	if method.HasCaptcha() {
		certification, err := page(res, StageCertification)
		if err != nil {
			return tokens{}, err
		}
		t.captchaVersion, err = ExtractScriptConst(certification, "captchaVersion")
		if err != nil {
			return tokens{}, atStage(err, StageCertification)
		}
	}

	s.tel.ReportDebug(
		report_session_init,
		fmt.Sprintf("method=%s carrier=%s", method, s.carrier),
		"captcha", t.captchaVersion != "",
	)
	return t, nil
}
