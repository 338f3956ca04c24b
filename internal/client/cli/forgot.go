package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/secureshare/internal/client/auth"
)

func (c *Cli) runForgotPassword(ctx context.Context) error {
	c.io.Println("=== Password Reset ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	if err := c.auth.StartForgotPassword(email); err != nil {
		return err
	}

	// при ошибке ввода процесс сброса не должен оставаться открытым
	defer func() {
		if st := c.auth.State(); st == auth.ForgotPassword || st == auth.ResetPassword {
			_ = c.auth.ExitPasswordReset()
		}
	}()

	// email уже введен, сразу запрашиваем код
	if err := c.requestReset(ctx, ""); err != nil {
		return err
	}

	for {
		snap := c.auth.Snapshot()

		switch snap.State {
		case auth.ForgotPassword:
			input, err := c.io.ReadInput(fmt.Sprintf("Email [%s] ('quit' to exit): ", snap.Email))
			if err != nil {
				return fmt.Errorf("failed to read email: %w", err)
			}
			if strings.EqualFold(input, "quit") {
				return nil
			}
			if err := c.requestReset(ctx, input); err != nil {
				return err
			}

		case auth.ResetPassword:
			if snap.ResetTTL > 0 {
				c.io.Printf("Code expires in %ds.\n", snap.ResetTTL)
			} else {
				c.io.Println("Code expired. Type 'resend' for a new one.")
			}

			code, err := c.io.ReadInput("Reset code ('back', 'resend', 'quit'): ")
			if err != nil {
				return fmt.Errorf("failed to read code: %w", err)
			}

			switch strings.ToLower(code) {
			case "quit":
				return nil
			case "back":
				if err := c.auth.BackToForgot(); err != nil {
					return err
				}
				continue
			case "resend":
				if err := c.requestReset(ctx, ""); err != nil {
					return err
				}
				continue
			}

			password, err := c.io.ReadPassword("New password: ")
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}

			err = c.auth.SubmitReset(ctx, code, password)
			if err == nil {
				c.io.Println()
				c.io.Println("✓ " + c.auth.Snapshot().Message)
				return nil
			}
			if !isRetryable(err) {
				return err
			}
			c.io.Printf("Error: %v\n", err)

		default:
			return nil
		}
	}
}

// requestReset запрашивает код и печатает результат. Ошибки сервера не прерывают процесс.
func (c *Cli) requestReset(ctx context.Context, email string) error {
	sent, err := c.auth.RequestReset(ctx, email)
	if err != nil {
		if !isRetryable(err) {
			return err
		}
		c.io.Println(err.Error())
		return nil
	}

	snap := c.auth.Snapshot()
	switch {
	case sent:
		c.io.Println(snap.Message)
	case snap.Email == "":
		c.io.Println("Email is required.")
	default:
		c.io.Printf("Please wait %d seconds before requesting another code.\n", snap.ForgotCooldown)
	}
	return nil
}
