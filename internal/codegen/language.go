package codegen

import "strings"

// DefaultLanguage is returned when no suffix in the table matches.
const DefaultLanguage = "javascript"

// languageBySuffix is checked in order; the first matching suffix wins.
var languageBySuffix = []struct {
	suffix   string
	language string
}{
	{".js", "javascript"},
	{".jsx", "javascript"},
	{".ts", "typescript"},
	{".tsx", "typescript"},
	{".css", "css"},
	{".html", "html"},
	{".json", "json"},
	{".md", "markdown"},
	{".py", "python"},
	{".java", "java"},
	{".cpp", "cpp"},
	{".c", "c"},
}

// LanguageFor infers a language tag from a file name.
func LanguageFor(filename string) string {
	for _, entry := range languageBySuffix {
		if strings.HasSuffix(filename, entry.suffix) {
			return entry.language
		}
	}
	return DefaultLanguage
}
