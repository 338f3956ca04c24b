package cli

import (
	"context"

	"github.com/iudanet/secureshare/internal/client/auth"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	snap := c.auth.Snapshot()
	if snap.State != auth.Authenticated {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'secureshare login' to authenticate.")
		return nil
	}

	c.io.Println("Status: Authenticated")
	c.io.Printf("Email: %s\n", snap.Email)

	// сервер подтверждает токен; 401 завершит сессию
	enabled, err := c.security.Status(ctx)
	if err != nil {
		return err
	}
	c.io.Printf("Two-factor authentication: %s\n", onOff(enabled))
	return nil
}

func onOff(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
