package deck

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// TitleFile names the optional file holding the deck title.
const TitleFile = "_title.md"

// Load reads a deck from a directory on disk.
func Load(dir string) (*Deck, error) {
	return LoadFS(os.DirFS(dir), ".")
}

// LoadFS reads every *.md file in dir, sorted by name. Files starting with an
// underscore are skipped; _title.md provides the deck title.
func LoadFS(fsys fs.FS, dir string) (*Deck, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading slides dir: %w", err)
	}

	var title string
	if content, err := fs.ReadFile(fsys, path.Join(dir, TitleFile)); err == nil {
		title = strings.TrimSpace(string(content))
	}

	var filenames []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || path.Ext(name) != ".md" || strings.HasPrefix(name, "_") {
			continue
		}
		filenames = append(filenames, name)
	}

	// File order is slide order.
	sort.Strings(filenames)

	slides := make([]Slide, 0, len(filenames))
	for _, filename := range filenames {
		content, err := fs.ReadFile(fsys, path.Join(dir, filename))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", filename, err)
		}
		slide, err := Parse(content)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", filename, err)
		}
		slides = append(slides, slide)
	}

	return New(title, slides)
}

// Parse turns one markdown file into a slide. Frontmatter keys are title,
// subtitle and cta. Without a title key the first "# " heading is used and
// removed from the body.
func Parse(content []byte) (Slide, error) {
	var slide Slide

	front, body, err := splitFrontmatter(content)
	if err != nil {
		return Slide{}, err
	}
	if len(front) > 0 {
		if err := yaml.Unmarshal(front, &slide); err != nil {
			return Slide{}, fmt.Errorf("frontmatter: %w", err)
		}
	}

	text := strings.TrimSpace(string(body))
	if strings.TrimSpace(slide.Title) == "" {
		slide.Title, text = extractHeading(text)
	}
	slide.Content = text

	return slide, nil
}

func splitFrontmatter(content []byte) ([]byte, []byte, error) {
	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(content, []byte("---\n")) {
		return nil, content, nil
	}

	lines := bytes.Split(content, []byte("\n"))
	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			return bytes.Join(lines[1:i], []byte("\n")), bytes.Join(lines[i+1:], []byte("\n")), nil
		}
	}

	return nil, nil, fmt.Errorf("frontmatter: missing closing delimiter")
}

func extractHeading(text string) (string, string) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			rest := append(lines[:i:i], lines[i+1:]...)
			return strings.TrimSpace(strings.TrimPrefix(trimmed, "# ")), strings.TrimSpace(strings.Join(rest, "\n"))
		}
	}
	return "", text
}
