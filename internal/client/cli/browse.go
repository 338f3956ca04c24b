package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/secureshare/internal/client/api"
)

const browseHelp = `Commands:
  search <text>           Search by file name (empty clears)
  type <content-type>     Filter by type (empty clears)
  from <YYYY-MM-DD>       Uploaded on or after (empty clears)
  to <YYYY-MM-DD>         Uploaded on or before (empty clears)
  sort <field> [asc|desc] Sort order
  size <n>                Page size
  next, prev, first, last, page <n>
  reset                   Clear all filters
  refresh                 Reload the current page
  share <id>              Create or reuse a share link
  delete <id>             Delete file
  help, quit`

// runBrowse интерактивный просмотр списка. Изменения параметров применяются
// через отложенный запрос движка, результат печатается по его завершении.
func (c *Cli) runBrowse(ctx context.Context) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	state, err := c.files.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("failed to list files: %w", err)
	}
	c.drainUpdates()
	c.printFiles(state)
	c.io.Println()
	c.io.Println("Type 'help' for commands.")

	for {
		line, err := c.io.ReadInput("files> ")
		if err != nil {
			return fmt.Errorf("failed to read command: %w", err)
		}
		if line == "" {
			continue
		}

		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)
		cmd = strings.ToLower(cmd)

		if cmd == "quit" || cmd == "exit" {
			return nil
		}

		if err := c.browseCommand(ctx, cmd, arg); err != nil {
			if api.IsUnauthorized(err) {
				return err
			}
			c.io.Printf("Error: %v\n", err)
		}
	}
}

func (c *Cli) browseCommand(ctx context.Context, cmd, arg string) error {
	switch cmd {
	case "help":
		c.io.Println(browseHelp)
		return nil
	case "refresh":
		state, err := c.files.Refresh(ctx)
		if err != nil {
			return err
		}
		c.drainUpdates()
		c.printFiles(state)
		return nil
	case "share":
		return c.shareFile(ctx, arg)
	case "delete":
		page := c.files.Query().Page
		c.drainUpdates()
		if err := c.deleteFile(ctx, arg); err != nil {
			return err
		}
		// страница опустела и движок перешел на последнюю
		if c.files.Query().Page != page {
			return c.awaitFiles(ctx)
		}
		c.printFiles(c.files.State())
		return nil
	}

	before := c.files.Query()
	c.drainUpdates()

	var err error
	switch cmd {
	case "search":
		c.files.SetSearch(arg)
	case "type":
		c.files.SetFileType(arg)
	case "from":
		err = c.files.SetStartDate(arg)
	case "to":
		err = c.files.SetEndDate(arg)
	case "sort":
		field, order, _ := strings.Cut(arg, " ")
		err = c.files.SetSort(field, strings.TrimSpace(order))
	case "size":
		err = c.setPageSize(arg)
	case "page":
		var n int
		if n, err = strconv.Atoi(arg); err == nil {
			c.files.SetPage(n)
		}
	case "next":
		c.files.NextPage()
	case "prev":
		c.files.PrevPage()
	case "first":
		c.files.FirstPage()
	case "last":
		c.files.LastPage()
	case "reset":
		c.files.ResetFilters()
	default:
		return fmt.Errorf("unknown command %q, type 'help'", cmd)
	}
	if err != nil {
		return err
	}

	if c.files.Query() == before {
		c.io.Println("Nothing changed.")
		return nil
	}
	return c.awaitFiles(ctx)
}

func (c *Cli) setPageSize(arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("invalid page size %q", arg)
	}
	return c.files.SetPageSize(n)
}

// awaitFiles ждет результата отложенного запроса и печатает его
func (c *Cli) awaitFiles(ctx context.Context) error {
	timer := time.NewTimer(c.wait)
	defer timer.Stop()

	for {
		select {
		case state := <-c.updates:
			if state.Err != nil {
				return state.Err
			}
			// страница вне диапазона: движок уже запросил последнюю
			if len(state.Files) == 0 && state.Total > 0 {
				continue
			}
			c.printFiles(state)
			return nil
		case <-timer.C:
			return errors.New("timed out waiting for the file list")
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (c *Cli) drainUpdates() {
	for {
		select {
		case <-c.updates:
		default:
			return
		}
	}
}
