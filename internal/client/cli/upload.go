package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/iudanet/secureshare/internal/models"
)

// shareFlags регистрирует флаги параметров ссылки
func (c *Cli) shareFlags(fs *flag.FlagSet) func() models.ShareSettings {
	expire := fs.Int("expire", c.share.ExpireDays, "Link lifetime in days")
	maxViews := fs.String("max-views", c.share.MaxViews, "Maximum number of views (empty for unlimited)")
	reuse := fs.Bool("reuse", c.share.ReuseExisting, "Reuse an existing link")

	return func() models.ShareSettings {
		return models.ShareSettings{
			ExpireDays:    *expire,
			MaxViews:      *maxViews,
			ReuseExisting: *reuse,
		}
	}
}

func (c *Cli) runUpload(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("upload", flag.ContinueOnError)
	fs.SetOutput(c.io)
	settings := c.shareFlags(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("missing file path. Usage: secureshare upload [-expire N] [-max-views N] [-reuse] PATH...")
	}

	if err := c.files.SetShareSettings(settings()); err != nil {
		return err
	}
	if err := c.requireAuth(); err != nil {
		return err
	}

	c.io.Printf("Uploading %d file(s)...\n", fs.NArg())

	uploaded, err := c.files.Upload(ctx, fs.Args()...)
	for _, u := range uploaded {
		c.io.Printf("✓ %s (%s)\n", u.File.Filename, u.File.SizeKB())
		c.io.Printf("   ID:   %s\n", u.File.ID)
		if u.LinkErr != nil {
			c.io.Printf("   Link: not created: %v\n", u.LinkErr)
			continue
		}
		c.io.Printf("   Link: %s\n", u.Link)
	}

	if err != nil {
		if skipped := fs.NArg() - len(uploaded); skipped > 0 {
			c.io.Printf("%d file(s) were not uploaded.\n", skipped)
		}
		return err
	}
	return nil
}

func (c *Cli) runShare(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("share", flag.ContinueOnError)
	fs.SetOutput(c.io)
	settings := c.shareFlags(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("missing file id. Usage: secureshare share [-expire N] [-max-views N] [-reuse] ID")
	}

	if err := c.files.SetShareSettings(settings()); err != nil {
		return err
	}
	if err := c.requireAuth(); err != nil {
		return err
	}
	return c.shareFile(ctx, fs.Arg(0))
}

func (c *Cli) shareFile(ctx context.Context, arg string) error {
	id, err := parseFileID(arg)
	if err != nil {
		return err
	}

	link, err := c.files.Share(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to create share link: %w", err)
	}

	c.io.Printf("Share link: %s\n", link)
	return nil
}

