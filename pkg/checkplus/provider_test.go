package checkplus

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"passnice/internal/components/telemetry"

	"golang.org/x/time/rate"
)

const (
	fakeLandingPath    = "/recruit/company/nice/checkplus_success_company.jsp"
	fakeServiceInfo    = "svc-7f3a"
	fakeCertInfoHash   = "cert-91bc"
	fakeCaptchaVersion = "cv-20240101"
	fakeCaptchaAnswer  = "123456"
	fakeSMSCode        = "654321"
	fakeQRNumber       = "482913"
	fakeEncData        = "enc_data=AbC%2B123"
	fakeGatewayCookie  = "JSESSIONID"
)

var (
	fakeCaptchaImage = []byte("\x89PNG captcha")
	fakeQRImage      = []byte("\x89PNG qr")
)

type recordedRequest struct {
	method string
	path   string
	form   url.Values
	header http.Header
	query  url.Values
}

// fakeProvider serves both the landing page of the requesting company and
// the checkplus endpoints.
type fakeProvider struct {
	server *httptest.Server

	mu        sync.Mutex
	requests  []recordedRequest
	confirmed bool

	// tweaks
	omitEncodeData  bool
	omitQRNumber    bool
	menuFailures    int
	sendStatus      string
	decryptedGender string
}

// newFakeProvider starts the provider after applying the tweaks so the
// handler never races with them.
func newFakeProvider(t *testing.T, tweaks ...func(p *fakeProvider)) *fakeProvider {
	p := &fakeProvider{decryptedGender: "0"}
	for _, tweak := range tweaks {
		tweak(p)
	}
	p.server = httptest.NewServer(http.HandlerFunc(p.serve))
	t.Cleanup(p.server.Close)
	return p
}

func (p *fakeProvider) landingURL() string {
	return p.server.URL + fakeLandingPath
}

func (p *fakeProvider) confirm() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.confirmed = true
}

func (p *fakeProvider) last(path string) (recordedRequest, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := len(p.requests) - 1; i >= 0; i-- {
		if p.requests[i].path == path {
			return p.requests[i], true
		}
	}
	return recordedRequest{}, false
}

func (p *fakeProvider) count(path string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, r := range p.requests {
		if r.path == path {
			n++
		}
	}
	return n
}

func (p *fakeProvider) session(t *testing.T, tel telemetry.API) *Session {
	s, err := NewSession(Options{
		Carrier:    CarrierSKT,
		LandingURL: p.landingURL(),
		BaseURL:    p.server.URL,
		Limiter:    rate.NewLimiter(rate.Inf, 0),
		Telemetry:  tel,
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		s.Close()
	})
	return s
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, body)
}

func writeHTML(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, body)
}

func (p *fakeProvider) serve(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p.mu.Lock()
	p.requests = append(p.requests, recordedRequest{
		method: r.Method,
		path:   r.URL.Path,
		form:   r.PostForm,
		header: r.Header.Clone(),
		query:  r.URL.Query(),
	})
	confirmed := p.confirmed
	failMenu := r.URL.Path == pathMenu && p.menuFailures > 0
	if failMenu {
		p.menuFailures--
	}
	p.mu.Unlock()

	serviceInfoOk := r.Header.Get(headerServiceInfo) == fakeServiceInfo

	switch {
	case r.URL.Path == fakeLandingPath && r.URL.Query().Get("enc_data") != "":
		writeHTML(w, fmt.Sprintf(`<html><script>
			form1.NICE_NAME.value = '홍길동';
			form1.NICE_GENDER.value = '%s';
			form1.NICE_BIRTHEDATE.value = '19990315';
			form1.NICE_MOBILENO.value = '01098765432';
			form1.submit();
		</script></html>`, p.decryptedGender))

	case r.URL.Path == fakeLandingPath:
		encodeData := `<input type="hidden" name="EncodeData" value="AgAFQjY2MzY=">`
		if p.omitEncodeData {
			encodeData = ""
		}
		writeHTML(w, fmt.Sprintf(`<form name="form_chk" method="post">
			<input type="hidden" name="m" value="checkplusService">
			%s
		</form>`, encodeData))

	case r.URL.Path == pathGateway:
		cookie, err := r.Cookie(correlationCookieName)
		if err != nil || !strings.HasSuffix(cookie.Value, "_WC") {
			http.Error(w, "missing correlation cookie", http.StatusForbidden)
			return
		}
		if r.PostForm.Get("m") != "checkplusService" || r.PostForm.Get("EncodeData") != "AgAFQjY2MzY=" {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		http.SetCookie(w, &http.Cookie{Name: fakeGatewayCookie, Value: "gw-session", Path: "/"})
		writeHTML(w, fmt.Sprintf(`<script>
			const SERVICE_INFO = "%s";
		</script>`, fakeServiceInfo))

	case r.URL.Path == pathMenu:
		if failMenu {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		writeHTML(w, "<html>menu</html>")

	case r.URL.Path == pathMethod:
		writeHTML(w, fmt.Sprintf(`<input type='hidden' name='certInfoHash' value='%s' />`, fakeCertInfoHash))

	case r.URL.Path == "/cert/mobileCert/sms/certification" || r.URL.Path == "/cert/mobileCert/push/certification":
		writeHTML(w, fmt.Sprintf(`<script>const captchaVersion = "%s";</script>`, fakeCaptchaVersion))

	case r.URL.Path == "/cert/mobileCert/qr/certification":
		if p.omitQRNumber {
			writeHTML(w, `<div class="qr_box"></div>`)
			return
		}
		writeHTML(w, fmt.Sprintf(`<div class="qr_box"><div class="qr_num">%s</div></div>`, fakeQRNumber))

	case r.URL.Path == pathCaptchaImage(fakeCaptchaVersion):
		w.Header().Set("Content-Type", "image/png")
		w.Write(fakeCaptchaImage)

	case r.URL.Path == pathQRImage(fakeQRNumber):
		w.Header().Set("Content-Type", "image/png")
		w.Write(fakeQRImage)

	case r.URL.Path == pathSMSSend || r.URL.Path == pathPushSend:
		if !serviceInfoOk {
			writeJSON(w, `{"code":"FAIL","message":"session expired"}`)
			return
		}
		if p.sendStatus != "" {
			writeJSON(w, fmt.Sprintf(`{"code":"%s"}`, p.sendStatus))
			return
		}
		if r.PostForm.Get("captchaAnswer") != fakeCaptchaAnswer {
			writeJSON(w, `{"code":"FAIL","message":"captcha mismatch"}`)
			return
		}
		writeJSON(w, `{"code":"SUCCESS","message":""}`)

	case r.URL.Path == pathSMSConfirm:
		if r.PostForm.Get("certCode") != fakeSMSCode {
			writeJSON(w, `{"code":"RETRY"}`)
			return
		}
		writeJSON(w, `{"code":"SUCCESS"}`)

	case r.URL.Path == pathPollConfirm:
		if !confirmed {
			writeJSON(w, `{"code":"0001"}`)
			return
		}
		writeJSON(w, `{"code":"0000"}`)

	case r.URL.Path == "/cert/mobileCert/push/confirm/proc" || r.URL.Path == "/cert/mobileCert/qr/confirm/proc":
		writeJSON(w, `{"code":"SUCCESS"}`)

	case r.URL.Path == pathResultSend:
		writeHTML(w, fmt.Sprintf(`<script>const queryString = "%s";</script>`, fakeEncData))

	default:
		http.NotFound(w, r)
	}
}
