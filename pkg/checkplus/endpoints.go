package checkplus

import "fmt"

const (
	// DefaultBaseURL is the verification provider.
	DefaultBaseURL = "https://nice.checkplus.co.kr"
	// DefaultLandingURL is the page of the requesting company that issues
	// the encrypted checkplus request and decrypts the final result.
	DefaultLandingURL = "https://www.ex.co.kr:8070/recruit/company/nice/checkplus_success_company.jsp"

	pathGateway     = "/CheckPlusSafeModel/checkplus.cb"
	pathMenu        = "/cert/main/menu"
	pathMethod      = "/cert/mobileCert/method"
	pathSMSSend     = "/cert/mobileCert/sms/certification/proc"
	pathPushSend    = "/cert/mobileCert/push/certification/proc"
	pathSMSConfirm  = "/cert/mobileCert/sms/confirm/proc"
	pathPollConfirm = "/cert/polling/confirm/check/proc"
	pathResultSend  = "/cert/result/send"

	headerServiceInfo = "x-service-info"
	headerRequestedBy = "X-Requested-With"

	platformOS = "Windows"
)

func pathCertification(method Method) string {
	return fmt.Sprintf("/cert/mobileCert/%s/certification", method.Action())
}

func pathConfirm(method Method) string {
	return fmt.Sprintf("/cert/mobileCert/%s/confirm/proc", method.Action())
}

func pathCaptchaImage(version string) string {
	return fmt.Sprintf("/cert/captcha/image/%s", version)
}

func pathQRImage(number string) string {
	return fmt.Sprintf("/cert/qr/image/%s", number)
}
