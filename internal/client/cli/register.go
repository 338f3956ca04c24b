package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/secureshare/internal/client/auth"
	"github.com/iudanet/secureshare/internal/validation"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if password != confirm {
		return fmt.Errorf("%w: passwords do not match", validation.ErrValidation)
	}

	c.io.Println()
	c.io.Println("Registering user...")

	if err := c.auth.Register(ctx, email, password); err != nil {
		return err
	}

	if c.auth.State() == auth.AwaitingEmailVerification {
		if err := c.verifyEmail(ctx); err != nil {
			return err
		}
		if c.auth.State() != auth.Authenticated {
			return nil
		}
	}

	c.io.Println()
	c.io.Println("✓ Registration successful!")
	c.io.Printf("Signed in as: %s\n", c.auth.Snapshot().Email)
	return nil
}

// verifyEmail запрашивает код из письма, пока он не будет принят или ввод не отменен
func (c *Cli) verifyEmail(ctx context.Context) error {
	c.io.Println(c.auth.Snapshot().Message)

	for {
		code, err := c.io.ReadInput("Verification code ('cancel' to stop): ")
		if err != nil {
			return fmt.Errorf("failed to read code: %w", err)
		}

		if strings.EqualFold(code, "cancel") {
			if err := c.auth.CancelChallenge(); err != nil {
				return err
			}
			c.io.Println("Verification cancelled. Use the code from the email to verify later.")
			return nil
		}

		err = c.auth.VerifyEmail(ctx, code)
		if err == nil {
			return nil
		}
		if !isRetryable(err) || c.auth.State() != auth.AwaitingEmailVerification {
			return err
		}
		c.io.Printf("Error: %v\n", err)
	}
}
