package cli

import (
	"context"
)

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	email := c.auth.Snapshot().Email
	if err := c.auth.Logout(ctx); err != nil {
		return err
	}

	c.io.Printf("✓ Logged out %s\n", email)
	return nil
}
