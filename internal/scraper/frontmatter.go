package scraper

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
)

const frontmatterDelim = "---"

// FrontmatterName returns the name: value from the block between the first
// two "---" delimiters of doc. Only the first name: line counts.
func FrontmatterName(doc string) (string, bool) {
	start := strings.Index(doc, frontmatterDelim)
	if start < 0 {
		return "", false
	}
	rest := doc[start+len(frontmatterDelim):]
	end := strings.Index(rest, frontmatterDelim)
	if end < 0 {
		return "", false
	}

	for _, line := range strings.Split(rest[:end], "\n") {
		line = strings.TrimSpace(line)
		if name, ok := strings.CutPrefix(line, "name:"); ok {
			return strings.TrimSpace(name), true
		}
	}
	return "", false
}

// MatchesSkillID reports whether doc's frontmatter names exactly skillID.
func MatchesSkillID(doc, skillID string) bool {
	name, ok := FrontmatterName(doc)
	return ok && name == skillID
}

// SkillDocument is a SKILL.md split into metadata and markdown body.
type SkillDocument struct {
	Name        string
	Description string
	Meta        map[string]interface{}
	Body        string
}

var docParser = goldmark.New(goldmark.WithExtensions(meta.Meta))

// ParseSkillDocument reads the YAML frontmatter of a SKILL.md. Documents
// without valid frontmatter come back with the whole content as Body.
func ParseSkillDocument(content string) SkillDocument {
	doc := SkillDocument{Body: content}

	var buf bytes.Buffer
	ctx := parser.NewContext()
	if err := docParser.Convert([]byte(content), &buf, parser.WithContext(ctx)); err != nil {
		return doc
	}

	fm, err := meta.TryGet(ctx)
	if err != nil || len(fm) == 0 {
		return doc
	}

	doc.Meta = fm
	doc.Name = metaString(fm, "name")
	doc.Description = metaString(fm, "description")
	doc.Body = stripFrontmatter(content)
	return doc
}

func metaString(fm map[string]interface{}, key string) string {
	v, ok := fm[key]
	if !ok || v == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

// stripFrontmatter drops a leading ---/--- block.
func stripFrontmatter(content string) string {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != frontmatterDelim {
		return content
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == frontmatterDelim {
			return strings.TrimLeft(strings.Join(lines[i+1:], "\n"), "\n")
		}
	}
	return content
}
