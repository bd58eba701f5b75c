package commands

import (
	"fmt"
	"os"
	"time"

	"passnice/pkg/checkplus"

	"github.com/spf13/cobra"
)

var (
	qrOut      string
	qrInterval time.Duration
	qrTimeout  time.Duration
)

func init() {
	qrCmd.Flags().StringVar(&qrOut, "qr-out", "qr.png", "Where to write the QR code image.")
	qrCmd.Flags().DurationVar(&qrInterval, "interval", 3*time.Second, "How often to poll for the app confirmation.")
	qrCmd.Flags().DurationVar(&qrTimeout, "timeout", 3*time.Minute, "How long to wait for the app confirmation.")
	rootCmd.AddCommand(qrCmd)
}

var qrCmd = &cobra.Command{
	Use:   "qr [--qr-out <path>] [--interval <duration>] [--timeout <duration>]",
	Short: "Verifies an identity by scanning a QR code with the PASS app.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		session, err := newSession()
		if err != nil {
			return err
		}
		defer session.Close()

		res, err := session.Init(ctx, checkplus.MethodAppQR, "")
		if err != nil {
			return err
		}
		if err := softError(res); err != nil {
			return err
		}

		qr, err := session.CreateQRVerification(ctx)
		if err != nil {
			return err
		}
		if err := softError(qr); err != nil {
			return err
		}
		err = writeImage(qrOut, qr.Data)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "scan %s with the PASS app or enter the number %s\n", qrOut, qr.Message)

		data, err := waitForApp(ctx, qrInterval, qrTimeout, session.CheckQRVerification)
		if err != nil {
			return err
		}
		return finish(ctx, checkplus.MethodAppQR, data)
	},
}
