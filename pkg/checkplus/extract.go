package checkplus

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// The extractors below are plain pattern searches over the raw response text,
// no HTML or JS parsing happens. They only tolerate whitespace and quote style
// differences, any other upstream markup change surfaces as an ErrParse naming
// the field.

// ExtractHiddenInput returns the value of the first
// `<input type="hidden" name="<name>" value="...">` element.
func ExtractHiddenInput(text, name string) (string, error) {
	pattern := regexp.MustCompile(fmt.Sprintf(
		`<input\s+type\s*=\s*["']hidden["']\s+name\s*=\s*["']%s["']\s+value\s*=\s*(?:"([^"]+)"|'([^']+)')\s*/?>`,
		regexp.QuoteMeta(name),
	))
	return firstGroup(pattern, text, name)
}

// ExtractScriptConst returns the value of the first `const <name> = "..."`
// statement.
func ExtractScriptConst(text, name string) (string, error) {
	pattern := regexp.MustCompile(fmt.Sprintf(
		`const\s+%s\s*=\s*(?:"([^"]+)"|'([^']+)')`,
		regexp.QuoteMeta(name),
	))
	return firstGroup(pattern, text, name)
}

// ExtractFormValue returns the value of the first `form1.<name>.value = '...'`
// assignment, the value may be empty.
func ExtractFormValue(text, name string) (string, error) {
	pattern := regexp.MustCompile(fmt.Sprintf(
		`form1\.%s\.value\s*=\s*(?:'([^']*)'|"([^"]*)")`,
		regexp.QuoteMeta(name),
	))
	return firstGroup(pattern, text, name)
}

// firstGroup returns the first participating capture group of the first
// match, each quote style has its own group.
func firstGroup(pattern *regexp.Regexp, text, name string) (string, error) {
	loc := pattern.FindStringSubmatchIndex(text)
	for i := 2; i+1 < len(loc); i += 2 {
		if loc[i] >= 0 {
			return text[loc[i]:loc[i+1]], nil
		}
	}
	return "", parseError(name, nil)
}

var digitsRegex = regexp.MustCompile(`^\d+$`)

const qrNumberField = "qr_num"

// extractQRNumber reads the number shown under the qr code in the qr
// certification page.
func extractQRNumber(text string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return "", parseError(qrNumberField, err)
	}
	number := strings.TrimSpace(doc.Find("div.qr_num").First().Text())
	if !digitsRegex.MatchString(number) {
		return "", parseError(qrNumberField, nil)
	}
	return number, nil
}
