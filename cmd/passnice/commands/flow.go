package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"passnice/internal/components/osutil"
	"passnice/pkg/checkplus"

	"github.com/jedib0t/go-pretty/v6/table"
)

var stdin = bufio.NewReader(os.Stdin)

func ask(label string) (string, error) {
	if osutil.IsInteractive(os.Stdin) {
		fmt.Fprintf(os.Stderr, "%s: ", label)
	}
	line, err := stdin.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// softError turns an unsuccessful result into an error for the commands
// that cannot continue past it.
func softError[T any](res checkplus.Result[T]) error {
	if res.Success {
		return nil
	}
	return errors.New(res.Message)
}

func writeImage(path string, image []byte) error {
	err := os.WriteFile(path, image, 0644)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "wrote %s (%d bytes)\n", path, len(image))
	return nil
}

// waitForApp polls check until the phone owner confirms in the PASS app,
// the context is cancelled or the deadline passes.
func waitForApp(
	ctx context.Context,
	interval, timeout time.Duration,
	check func(context.Context) (checkplus.Result[*checkplus.VerificationData], error),
) (*checkplus.VerificationData, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		res, err := check(ctx)
		if err != nil {
			return nil, err
		}
		if res.Success {
			return res.Data, nil
		}
		slog.Debug("waiting for app confirmation", "message", res.Message)

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("gave up waiting for app confirmation: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}

func finish(ctx context.Context, method checkplus.Method, data *checkplus.VerificationData) error {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRows([]table.Row{
		{"Name", data.Name},
		{"Birthdate", data.Birthdate.Format("2006-01-02")},
		{"Gender", genderLabel(data.Gender)},
		{"Phone number", data.PhoneNumber},
		{"Carrier", data.Carrier},
		{"Method", method},
	})
	t.SetStyle(table.StyleRounded)
	t.Render()

	if history == nil {
		return nil
	}
	id, err := history.SaveVerification(ctx, method, *data, clock.Now())
	if err != nil {
		return fmt.Errorf("save verification: %w", err)
	}
	slog.Info("saved verification", "id", id)
	return nil
}

func genderLabel(g checkplus.Gender) string {
	switch g {
	case checkplus.GenderMale:
		return "male"
	case checkplus.GenderFemale:
		return "female"
	}
	return string(g)
}
