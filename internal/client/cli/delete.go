package cli

import (
	"context"
	"errors"
	"fmt"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("missing file id. Usage: secureshare delete ID")
	}
	if err := c.requireAuth(); err != nil {
		return err
	}
	return c.deleteFile(ctx, args[0])
}

func (c *Cli) deleteFile(ctx context.Context, arg string) error {
	id, err := parseFileID(arg)
	if err != nil {
		return err
	}

	if err := c.files.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	c.io.Printf("✓ File %s deleted\n", id)
	return nil
}
