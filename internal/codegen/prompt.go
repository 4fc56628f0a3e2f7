package codegen

import (
	"fmt"
	"sort"
	"strings"

	"codecraft/backend/internal/model"
)

const (
	filesContextHeader  = "\n\nCurrent project files:\n"
	revisionInstruction = "\n\nPlease provide your response and any updated files in the same JSON format."
)

// BuildRevisionPrompt appends every current file as a fenced, language-tagged
// block to the user's message. Files are written in name order. With a
// positive budget, once the serialized blocks would exceed it the remaining
// files are listed by name only.
func BuildRevisionPrompt(message string, files map[string]model.ProjectFile, budget int) string {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(message)
	b.WriteString(filesContextHeader)

	used := 0
	exhausted := false
	for _, name := range names {
		f := files[name]
		lang := f.Language
		if lang == "" {
			lang = LanguageFor(name)
		}
		block := fmt.Sprintf("\n%s:\n```%s\n%s\n```\n", name, lang, f.Content)
		if !exhausted && budget > 0 && used+len(block) > budget {
			exhausted = true
		}
		if exhausted {
			fmt.Fprintf(&b, "\n%s: (content omitted, context budget reached)\n", name)
			continue
		}
		used += len(block)
		b.WriteString(block)
	}

	b.WriteString(revisionInstruction)
	return b.String()
}
