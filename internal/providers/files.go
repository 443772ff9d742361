package providers

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"anypick/internal/domain"
	"anypick/internal/fuzzy"
)

// maxScanDepth bounds the walk below the root directory
const maxScanDepth = 6

// iconsByExt maps file extensions to display glyphs
var iconsByExt = map[string]string{
	".go":   "🐹",
	".md":   "📝",
	".toml": "⚙",
	".yaml": "⚙",
	".yml":  "⚙",
	".json": "⚙",
	".sh":   "$",
}

// FilesProvider supplies the files under a root directory. The short
// name is the basename, the full name the root-relative path.
type FilesProvider struct {
	root   string
	editor string
	pager  func(r io.Reader) error
}

// NewFilesProvider creates a provider scanning root. editor may be
// empty, in which case $EDITOR decides what opens a file.
func NewFilesProvider(root, editor string) *FilesProvider {
	return &FilesProvider{root: root, editor: editor}
}

// SetPager installs the pager used by the reveal action
func (p *FilesProvider) SetPager(pager func(r io.Reader) error) {
	p.pager = pager
}

// Label implements domain.Provider
func (p *FilesProvider) Label() string { return "files" }

// Provide walks the root directory and adds one candidate per file.
// Hidden directories are skipped, as is anything deeper than
// maxScanDepth levels.
func (p *FilesProvider) Provide(sink domain.Sink) error {
	return filepath.WalkDir(p.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, not fatal
			return nil
		}

		rel, relErr := filepath.Rel(p.root, path)
		if relErr != nil {
			return nil
		}

		if d.IsDir() {
			if rel == "." {
				return nil
			}
			if strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			if strings.Count(rel, string(filepath.Separator)) >= maxScanDepth {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			return nil
		}

		sink.Add(&domain.Candidate{
			Name:     d.Name(),
			FullName: filepath.ToSlash(rel),
			Payload:  path,
			Provider: p,
		})
		return nil
	})
}

// Icon implements domain.Provider
func (p *FilesProvider) Icon(c *domain.Candidate) string {
	return iconsByExt[strings.ToLower(filepath.Ext(c.Name))]
}

// OnOpen opens the file in the editor. Anything the user typed after
// the matchable pattern is passed to the editor as extra arguments,
// so "main.go +120" opens at a line for editors that take +N.
func (p *FilesProvider) OnOpen(c *domain.Candidate, fullPattern string) error {
	editor := p.editor
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "vi"
	}

	args := append(extraArgs(fullPattern), c.Payload.(string))
	cmd := exec.Command(editor, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("open %s: %w", c.FullName, err)
	}
	return nil
}

// OnReveal pages the file content without leaving the picker
func (p *FilesProvider) OnReveal(c *domain.Candidate) error {
	if p.pager == nil {
		return fmt.Errorf("no pager configured")
	}
	f, err := os.Open(c.Payload.(string))
	if err != nil {
		return fmt.Errorf("reveal %s: %w", c.FullName, err)
	}
	defer f.Close()
	return p.pager(f)
}

// extraArgs returns the whitespace-separated tokens after the
// matchable part of the pattern.
func extraArgs(fullPattern string) []string {
	tail := strings.TrimPrefix(fullPattern, fuzzy.SplitPattern(fullPattern))
	return strings.Fields(tail)
}
