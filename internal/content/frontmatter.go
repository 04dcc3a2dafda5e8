package content

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type postFrontMatter struct {
	Slug    string   `yaml:"slug"`
	Title   string   `yaml:"title"`
	Date    string   `yaml:"date"`
	Summary string   `yaml:"summary"`
	Tags    []string `yaml:"tags"`
	Draft   bool     `yaml:"draft"`
}

type snippetManifest struct {
	Title      string   `yaml:"title"`
	DefaultTab *int     `yaml:"default_tab"`
	Files      []string `yaml:"files"`
}

// parsePost splits the YAML header from the markdown body. The bool result reports a draft.
func parsePost(name, raw string) (Post, bool, error) {
	fm, body := splitFrontMatter(raw)
	front := postFrontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Post{}, false, fmt.Errorf("content: parse front matter %s: %w", name, err)
		}
	}
	slug := sanitizeSlug(firstNonEmpty(front.Slug, strings.TrimSuffix(name, ".md")))
	post := Post{
		Slug:    slug,
		Title:   strings.TrimSpace(front.Title),
		Date:    strings.TrimSpace(front.Date),
		Summary: strings.TrimSpace(front.Summary),
		Tags:    front.Tags,
		Body:    body,
	}
	return post, front.Draft, nil
}

func parseManifest(name string, data []byte) (snippetManifest, error) {
	var m snippetManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return snippetManifest{}, fmt.Errorf("content: parse manifest %s: %w", name, err)
	}
	return m, nil
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	input = strings.ReplaceAll(input, "\r\n", "\n")
	lines := strings.Split(input, "\n")
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n")
		}
	}
	return "", input
}
