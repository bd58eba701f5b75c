package commands

import (
	"fmt"
	"os"

	"passnice/pkg/checkplus"

	"github.com/spf13/cobra"
)

var (
	smsCaptchaOut string
	smsAttempts   int
)

func init() {
	smsCmd.Flags().StringVar(&smsCaptchaOut, "captcha-out", "captcha.png", "Where to write the captcha image.")
	smsCmd.Flags().IntVar(&smsAttempts, "attempts", 3, "How many times a wrong verification code may be entered.")
	rootCmd.AddCommand(smsCmd)
}

var smsCmd = &cobra.Command{
	Use:   "sms [--captcha-out <path>] [--attempts <n>]",
	Short: "Verifies an identity with a code sent over SMS.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		session, err := newSession()
		if err != nil {
			return err
		}
		defer session.Close()

		res, err := session.Init(ctx, checkplus.MethodSMS, "")
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
		err = writeImage(smsCaptchaOut, captcha.Data)
		if err != nil {
			return err
		}

		var req checkplus.SMSRequest
		for _, field := range []struct {
			label string
			out   *string
		}{
			{"Name", &req.Name},
			{"Birthdate (YYMMDD or YYYYMMDD)", &req.Birthdate},
			{"Gender digit (first digit after the birthdate)", &req.Gender},
			{"Phone number", &req.Phone},
			{fmt.Sprintf("Captcha (see %s)", smsCaptchaOut), &req.CaptchaAnswer},
		} {
			*field.out, err = ask(field.label)
			if err != nil {
				return err
			}
		}

		sent, err := session.SendSMSVerification(ctx, req)
		if err != nil {
			return err
		}
		if err := softError(sent); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, sent.Message)

		for i := 0; i < smsAttempts; i++ {
			code, err := ask("Verification code")
			if err != nil {
				return err
			}
			checked, err := session.CheckSMSVerification(ctx, code)
			if err != nil {
				return err
			}
			if checked.Success {
				return finish(ctx, checkplus.MethodSMS, checked.Data)
			}
			fmt.Fprintln(os.Stderr, checked.Message)
		}
		return fmt.Errorf("no correct verification code after %d attempts", smsAttempts)
	},
}
