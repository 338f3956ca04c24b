package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/iudanet/secureshare/internal/client/files"
	"github.com/iudanet/secureshare/internal/validation"
)

const timeLayout = "2006-01-02 15:04"

func (c *Cli) runFiles(ctx context.Context, args []string) error {
	def := files.DefaultQuery()

	fs := flag.NewFlagSet("files", flag.ContinueOnError)
	fs.SetOutput(c.io)
	search := fs.String("search", "", "Search text")
	fileType := fs.String("type", "", "Content type filter, e.g. application/pdf")
	from := fs.String("from", "", "Uploaded on or after (YYYY-MM-DD)")
	to := fs.String("to", "", "Uploaded on or before (YYYY-MM-DD)")
	sortBy := fs.String("sort", def.SortBy, "Sort field")
	order := fs.String("order", def.SortOrder, "Sort order: asc or desc")
	page := fs.Int("page", def.Page, "Page number")
	size := fs.Int("size", def.PageSize, "Page size")

	if err := fs.Parse(args); err != nil {
		return err
	}

	q := files.Query{
		Search:    *search,
		FileType:  *fileType,
		StartDate: *from,
		EndDate:   *to,
		SortBy:    *sortBy,
		SortOrder: *order,
		Page:      *page,
		PageSize:  *size,
	}
	if err := validateQuery(q); err != nil {
		return err
	}

	if err := c.requireAuth(); err != nil {
		return err
	}

	c.files.SetQuery(q)
	state, err := c.files.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("failed to list files: %w", err)
	}

	// номер страницы уменьшен до последней существующей
	if state.Query.Page != q.Page {
		if state, err = c.files.Refresh(ctx); err != nil {
			return fmt.Errorf("failed to list files: %w", err)
		}
	}

	c.printFiles(state)
	return nil
}

func validateQuery(q files.Query) error {
	if err := validation.ValidateDate("from", q.StartDate); err != nil {
		return err
	}
	if err := validation.ValidateDate("to", q.EndDate); err != nil {
		return err
	}
	if q.SortOrder != "asc" && q.SortOrder != "desc" {
		return fmt.Errorf("%w: sort order must be asc or desc, got %q", validation.ErrValidation, q.SortOrder)
	}
	if q.Page < 1 {
		return fmt.Errorf("%w: page must be positive, got %d", validation.ErrValidation, q.Page)
	}
	if q.PageSize < 1 {
		return fmt.Errorf("%w: page size must be positive, got %d", validation.ErrValidation, q.PageSize)
	}
	return nil
}

// printFiles выводит страницу списка и переключатель страниц
func (c *Cli) printFiles(state files.State) {
	q := state.Query
	c.io.Printf("=== Files (sort: %s %s) ===\n", q.SortBy, q.SortOrder)
	if f := describeFilters(q); f != "" {
		c.io.Printf("Filters: %s\n", f)
	}
	c.io.Println()

	if len(state.Files) == 0 {
		c.io.Println("No files found.")
	}

	offset := (q.Page - 1) * q.PageSize
	for i, f := range state.Files {
		c.io.Printf("%d. %s\n", offset+i+1, f.Filename)
		c.io.Printf("   ID:       %s\n", f.ID)
		c.io.Printf("   Type:     %s\n", f.FileType)
		c.io.Printf("   Size:     %s\n", f.SizeKB())
		c.io.Printf("   Uploaded: %s\n", f.CreatedAt.Local().Format(timeLayout))
		if !f.ExpiresAt.IsZero() {
			c.io.Printf("   Expires:  %s\n", f.ExpiresAt.Local().Format(timeLayout))
		}
		if link, ok := state.Links[f.ID]; ok {
			c.io.Printf("   Link:     %s\n", link)
		}
	}

	p := state.Pagination
	if !p.Visible {
		return
	}
	c.io.Println()
	c.io.Printf("Page %d of %d (%d files)\n", p.Page, p.TotalPages, p.Total)

	var nav []string
	for _, n := range []struct {
		name string
		ok   bool
	}{{"first", p.First}, {"prev", p.Prev}, {"next", p.Next}, {"last", p.Last}} {
		if n.ok {
			nav = append(nav, n.name)
		}
	}
	if len(nav) > 0 {
		c.io.Printf("Navigate: %s\n", strings.Join(nav, ", "))
	}
}

func describeFilters(q files.Query) string {
	var parts []string
	if s := strings.TrimSpace(q.Search); s != "" {
		parts = append(parts, fmt.Sprintf("search=%q", s))
	}
	if q.FileType != "" {
		parts = append(parts, "type="+q.FileType)
	}
	if q.StartDate != "" {
		parts = append(parts, "from="+q.StartDate)
	}
	if q.EndDate != "" {
		parts = append(parts, "to="+q.EndDate)
	}
	return strings.Join(parts, " ")
}
