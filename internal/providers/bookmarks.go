package providers

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"anypick/internal/domain"
)

// BookmarksProvider supplies the named directories from the config
// file. Opening a bookmark prints its path, so a shell wrapper can cd
// into it after the picker exits.
type BookmarksProvider struct {
	bookmarks map[string]string
	out       io.Writer
	pager     func(r io.Reader) error
}

// NewBookmarksProvider creates a provider for the given name -> path map
func NewBookmarksProvider(bookmarks map[string]string, out io.Writer) *BookmarksProvider {
	return &BookmarksProvider{bookmarks: bookmarks, out: out}
}

// SetPager installs the pager used by the reveal action
func (p *BookmarksProvider) SetPager(pager func(r io.Reader) error) {
	p.pager = pager
}

// Label implements domain.Provider
func (p *BookmarksProvider) Label() string { return "marks" }

// Provide adds one candidate per bookmark, in name order so the
// candidate list is deterministic across sessions.
func (p *BookmarksProvider) Provide(sink domain.Sink) error {
	names := make([]string, 0, len(p.bookmarks))
	for name := range p.bookmarks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		sink.Add(&domain.Candidate{
			Name:     name,
			FullName: p.bookmarks[name],
			Payload:  p.bookmarks[name],
			Provider: p,
		})
	}
	return nil
}

// Icon implements domain.Provider
func (p *BookmarksProvider) Icon(c *domain.Candidate) string { return "⌂" }

// OnOpen prints the bookmarked path to the configured writer
func (p *BookmarksProvider) OnOpen(c *domain.Candidate, fullPattern string) error {
	_, err := fmt.Fprintln(p.out, c.Payload.(string))
	return err
}

// OnReveal pages a listing of the bookmarked directory
func (p *BookmarksProvider) OnReveal(c *domain.Candidate) error {
	if p.pager == nil {
		return fmt.Errorf("no pager configured")
	}

	entries, err := os.ReadDir(c.Payload.(string))
	if err != nil {
		return fmt.Errorf("reveal %s: %w", c.Name, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n\n", c.Name, c.Payload.(string))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			name += "/"
		}
		b.WriteString(name)
		b.WriteString("\n")
	}
	return p.pager(strings.NewReader(b.String()))
}
