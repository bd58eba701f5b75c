package checkplus

import (
	"fmt"
	"math/rand"
	"net/http"
	"net/http/cookiejar"

	"github.com/google/uuid"
)

const correlationCookieName = "wcCookie"

// newCorrelationCookie generates the client side cookie the provider expects
// before it accepts the gateway request.
func newCorrelationCookie() string {
	return fmt.Sprintf("%s_T_%d_WC", uuid.NewString(), 10000+rand.Intn(90000))
}

func (s *Session) setCorrelationCookie() string {
	value := newCorrelationCookie()
	s.jar.SetCookies(s.baseURL, []*http.Cookie{{
		Name:  correlationCookieName,
		Value: value,
		Path:  "/",
	}})
	return value
}

// resetCookies swaps in an empty cookie jar.
func (s *Session) resetCookies() error {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return err
	}
	s.jar = jar
	s.http.SetCookieJar(jar)
	return nil
}
