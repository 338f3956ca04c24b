package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/secureshare/internal/client/api"
)

// Run выполняет команду. args не включают имя команды.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	var err error

	switch command {
	case "register":
		err = c.runRegister(ctx)
	case "login":
		err = c.runLogin(ctx)
	case "logout":
		err = c.runLogout(ctx)
	case "status":
		err = c.runStatus(ctx)
	case "forgot-password":
		err = c.runForgotPassword(ctx)
	case "files":
		err = c.runFiles(ctx, args)
	case "browse":
		err = c.runBrowse(ctx)
	case "upload":
		err = c.runUpload(ctx, args)
	case "share":
		err = c.runShare(ctx, args)
	case "delete":
		err = c.runDelete(ctx, args)
	case "2fa":
		err = c.runTwoFactor(ctx, args)
	case "change-password":
		err = c.runChangePassword(ctx)
	default:
		PrintUsage(c.io)
		return fmt.Errorf("unknown command: %s", command)
	}

	if err != nil && api.IsUnauthorized(err) && c.auth.Snapshot().Expired {
		return ErrSessionExpired
	}
	return err
}
