package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/secureshare/internal/client/security"
)

func (c *Cli) runTwoFactor(ctx context.Context, args []string) error {
	action := "status"
	if len(args) > 0 {
		action = args[0]
	}
	if err := c.requireAuth(); err != nil {
		return err
	}

	var toggle func(context.Context) (*security.ToggleResult, error)
	switch action {
	case "status":
		enabled, err := c.security.Status(ctx)
		if err != nil {
			return err
		}
		c.io.Printf("Two-factor authentication: %s\n", onOff(enabled))
		return nil
	case "enable":
		toggle = c.security.Enable
	case "disable":
		toggle = c.security.Disable
	case "toggle":
		toggle = c.security.Toggle
	default:
		return fmt.Errorf("unknown 2fa action: %s. Use: status, enable, disable, toggle", action)
	}

	res, err := toggle(ctx)
	if res != nil {
		if res.Message != "" {
			c.io.Println(res.Message)
		}
		c.io.Printf("Two-factor authentication: %s\n", onOff(res.Enabled))
	}
	return err
}

func (c *Cli) runChangePassword(ctx context.Context) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	c.io.Println("=== Change Password ===")
	c.io.Println()

	current, err := c.io.ReadPassword("Current password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	newPassword, err := c.io.ReadPassword("New password (min 8 chars): ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	confirm, err := c.io.ReadPassword("Confirm new password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if err := c.security.ChangePassword(ctx, current, newPassword, confirm); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Password changed successfully")
	return nil
}
