package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"codecraft/backend/internal/model"
)

func TestBuildRevisionPrompt(t *testing.T) {
	files := map[string]model.ProjectFile{
		"b.css": {Name: "b.css", Content: ".x{}", Language: "css"},
		"a.js":  {Name: "a.js", Content: "let a = 1;"},
	}

	t.Run("Serializes every file in name order", func(t *testing.T) {
		got := BuildRevisionPrompt("make button red", files, 0)

		expected := "make button red" +
			"\n\nCurrent project files:\n" +
			"\na.js:\n```javascript\nlet a = 1;\n```\n" +
			"\nb.css:\n```css\n.x{}\n```\n" +
			"\n\nPlease provide your response and any updated files in the same JSON format."
		assert.Equal(t, expected, got)
	})

	t.Run("Budget omits the remaining files by name", func(t *testing.T) {
		got := BuildRevisionPrompt("hi", files, 40)

		assert.Contains(t, got, "```javascript\nlet a = 1;\n```")
		assert.NotContains(t, got, ".x{}")
		assert.Contains(t, got, "\nb.css: (content omitted, context budget reached)\n")
	})

	t.Run("No files still carries the instruction", func(t *testing.T) {
		got := BuildRevisionPrompt("hello", nil, 0)

		assert.True(t, strings.HasPrefix(got, "hello\n\nCurrent project files:\n"))
		assert.True(t, strings.HasSuffix(got, revisionInstruction))
	})
}
