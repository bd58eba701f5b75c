package checkplus

import "strings"

// Carrier is the retail mobile carrier code of the person being verified,
// MVNO codes (SM, KM, LM) share the network of their host carrier.
type Carrier string

const (
	CarrierSKT     Carrier = "SK"
	CarrierKT      Carrier = "KT"
	CarrierLGU     Carrier = "LG"
	CarrierSKTMVNO Carrier = "SM"
	CarrierKTMVNO  Carrier = "KM"
	CarrierLGUMVNO Carrier = "LM"
)

var carrierGroups = map[Carrier]string{
	CarrierSKT:     "COMMON_MOBILE_SKT",
	CarrierSKTMVNO: "COMMON_MOBILE_SKT",
	CarrierKT:      "COMMON_MOBILE_KT",
	CarrierKTMVNO:  "COMMON_MOBILE_KT",
	CarrierLGU:     "COMMON_MOBILE_LGU",
	CarrierLGUMVNO: "COMMON_MOBILE_LGU",
}

func ParseCarrier(s string) (Carrier, error) {
	c := Carrier(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := carrierGroups[c]; !ok {
		return "", validationError("carrier", "unknown carrier %q (expected one of SK, KT, LG, SM, KM, LM)", s)
	}
	return c, nil
}

// Group returns the provider side network identifier of the carrier.
func (c Carrier) Group() string {
	return carrierGroups[c]
}

// Method is the way the person confirms their identity.
type Method string

const (
	MethodSMS     Method = "sms"
	MethodAppPush Method = "app_push"
	MethodAppQR   Method = "app_qr"
)

func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case MethodSMS, MethodAppPush, MethodAppQR:
		return m, nil
	}
	return "", validationError("method", "unknown verification method %q (expected sms, app_push or app_qr)", s)
}

// Action is the path segment the provider uses for the method, push and qr
// live under the same namespace as their app_ counterparts.
func (m Method) Action() string {
	return strings.TrimPrefix(string(m), "app_")
}

// HasCaptcha reports whether the method has a captcha stage, qr does not.
func (m Method) HasCaptcha() bool {
	return m == MethodSMS || m == MethodAppPush
}

func (m Method) isApp() bool {
	return m == MethodAppPush || m == MethodAppQR
}
