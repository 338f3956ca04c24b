package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/secureshare/internal/client/auth"
)

func (c *Cli) runLogin(ctx context.Context) error {
	if snap := c.auth.Snapshot(); snap.State == auth.Authenticated {
		c.io.Printf("Already logged in as %s\n", snap.Email)
		return nil
	}

	c.io.Println("=== Login ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	if err := c.auth.Login(ctx, email, password); err != nil {
		return err
	}

	if c.auth.State() == auth.AwaitingTwoFactor {
		if err := c.twoFactor(ctx); err != nil {
			return err
		}
		if c.auth.State() != auth.Authenticated {
			return nil
		}
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Signed in as: %s\n", c.auth.Snapshot().Email)
	return nil
}

// twoFactor ввод кода 2FA с повторной отправкой и отменой
func (c *Cli) twoFactor(ctx context.Context) error {
	c.io.Println(c.auth.Snapshot().Message)

	for {
		snap := c.auth.Snapshot()
		if snap.State != auth.AwaitingTwoFactor {
			return nil
		}
		c.printTwoFactorTimers(snap)

		input, err := c.io.ReadInput("2FA code ('resend', 'cancel'): ")
		if err != nil {
			return fmt.Errorf("failed to read code: %w", err)
		}

		switch strings.ToLower(input) {
		case "cancel":
			if err := c.auth.CancelChallenge(); err != nil {
				return err
			}
			c.io.Println("Login cancelled.")
			return nil

		case "resend":
			sent, err := c.auth.ResendTwoFactor(ctx)
			if err != nil {
				if !isRetryable(err) || c.auth.State() != auth.AwaitingTwoFactor {
					return err
				}
				c.io.Printf("Error: %v\n", err)
				continue
			}
			if !sent {
				c.io.Printf("Please wait %d seconds before requesting a new code.\n", c.auth.Snapshot().TwoFactorCooldown)
				continue
			}
			if c.auth.State() == auth.AwaitingTwoFactor {
				c.io.Println(c.auth.Snapshot().Message)
			}

		default:
			err := c.auth.VerifyTwoFactor(ctx, input)
			if err == nil {
				return nil
			}
			if !isRetryable(err) || c.auth.State() != auth.AwaitingTwoFactor {
				return err
			}
			c.io.Println(c.auth.Snapshot().Message)
		}
	}
}

func (c *Cli) printTwoFactorTimers(snap auth.Snapshot) {
	if snap.TwoFactorTTL > 0 {
		c.io.Printf("Code expires in %ds. ", snap.TwoFactorTTL)
	} else {
		c.io.Printf("Code expired. ")
	}
	if snap.TwoFactorCooldown > 0 {
		c.io.Printf("Resend available in %ds.\n", snap.TwoFactorCooldown)
	} else {
		c.io.Println("Resend available now.")
	}
}
