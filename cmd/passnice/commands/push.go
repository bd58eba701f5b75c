package commands

import (
	"fmt"
	"os"
	"time"

	"passnice/pkg/checkplus"

	"github.com/spf13/cobra"
)

var (
	pushCaptchaOut string
	pushInterval   time.Duration
	pushTimeout    time.Duration
)

func init() {
	pushCmd.Flags().StringVar(&pushCaptchaOut, "captcha-out", "captcha.png", "Where to write the captcha image.")
	pushCmd.Flags().DurationVar(&pushInterval, "interval", 3*time.Second, "How often to poll for the app confirmation.")
	pushCmd.Flags().DurationVar(&pushTimeout, "timeout", 3*time.Minute, "How long to wait for the app confirmation.")
	rootCmd.AddCommand(pushCmd)
}

var pushCmd = &cobra.Command{
	Use:   "push [--captcha-out <path>] [--interval <duration>] [--timeout <duration>]",
	Short: "Verifies an identity with a push notification to the PASS app.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		session, err := newSession()
		if err != nil {
			return err
		}
		defer session.Close()

		res, err := session.Init(ctx, checkplus.MethodAppPush, "")
		if err != nil {
			return err
		}
		if err := softError(res); err != nil {
			return err
		}

		captcha, err := session.RetrieveCaptcha(ctx)
		if err != nil {
			return err
		}
		err = writeImage(pushCaptchaOut, captcha.Data)
		if err != nil {
			return err
		}

		var req checkplus.PushRequest
		req.Name, err = ask("Name")
		if err != nil {
			return err
		}
		req.Phone, err = ask("Phone number")
		if err != nil {
			return err
		}
		req.CaptchaAnswer, err = ask(fmt.Sprintf("Captcha (see %s)", pushCaptchaOut))
		if err != nil {
			return err
		}

		sent, err := session.SendPushVerification(ctx, req)
		if err != nil {
			return err
		}
		if err := softError(sent); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, sent.Message)

		data, err := waitForApp(ctx, pushInterval, pushTimeout, session.CheckPushVerification)
		if err != nil {
			return err
		}
		return finish(ctx, checkplus.MethodAppPush, data)
	},
}
