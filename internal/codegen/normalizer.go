package codegen

import "github.com/tidwall/gjson"

// Mode tells the normalizer what the caller asked the AI for. It only matters
// when the response cannot be parsed.
type Mode int

const (
	// ModeGenerate is a fresh project generation; bad output gets a placeholder project.
	ModeGenerate Mode = iota
	// ModeChat is a chat turn on an existing project; bad output is read as plain text.
	ModeChat
)

const (
	DefaultTitle      = "Untitled Project"
	FallbackTitle     = "Generated Project"
	FallbackFileName  = "App.js"
	FallbackCode      = "// Generated code will appear here\nexport default function App() {\n  return <div>Hello World</div>;\n}"
	fallbackExplainer = "Generated code based on: "
)

// NormalizedFile is one file from an AI response, in response order.
type NormalizedFile struct {
	Name string
	Code string
}

// Normalized is the canonical {title, explanation, files} shape.
type Normalized struct {
	Title       string
	Explanation string
	Files       []NormalizedFile
	// Malformed is set when the raw text was not a JSON object.
	Malformed bool
}

// Normalize parses a raw AI response. It never fails: a response that is not
// a JSON object resolves through the mode's deterministic branch.
func Normalize(raw string, mode Mode, prompt string) Normalized {
	if !gjson.Valid(raw) {
		return malformed(raw, mode, prompt)
	}
	doc := gjson.Parse(raw)
	if !doc.IsObject() {
		return malformed(raw, mode, prompt)
	}

	// A repeated key resolves to its last occurrence, at every level.
	var title, explanation, files gjson.Result
	doc.ForEach(func(key, value gjson.Result) bool {
		switch key.String() {
		case "project_title":
			title = value
		case "explanation":
			explanation = value
		case "files":
			files = value
		}
		return true
	})

	out := Normalized{Title: DefaultTitle}
	if title.Type == gjson.String {
		out.Title = title.String()
	}
	if explanation.Type == gjson.String {
		out.Explanation = explanation.String()
	} else if mode == ModeChat {
		out.Explanation = raw
	}

	if !files.IsObject() {
		return out
	}
	index := map[string]int{}
	files.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if name == "" {
			return true
		}
		code, ok := codeOf(value)
		if !ok {
			return true
		}
		if i, dup := index[name]; dup {
			out.Files[i].Code = code
			return true
		}
		index[name] = len(out.Files)
		out.Files = append(out.Files, NormalizedFile{Name: name, Code: code})
		return true
	})
	return out
}

// codeOf accepts either {"code": "..."} or a bare string.
func codeOf(v gjson.Result) (string, bool) {
	switch {
	case v.Type == gjson.String:
		return v.String(), true
	case v.IsObject():
		c := v.Get("code")
		if c.Type == gjson.String {
			return c.String(), true
		}
	}
	return "", false
}

func malformed(raw string, mode Mode, prompt string) Normalized {
	if mode == ModeChat {
		return Normalized{Explanation: raw, Malformed: true}
	}
	return Fallback(prompt)
}

// Fallback is the placeholder project used when generation output is unusable.
// It depends on prompt only.
func Fallback(prompt string) Normalized {
	return Normalized{
		Title:       FallbackTitle,
		Explanation: fallbackExplainer + prompt,
		Files:       []NormalizedFile{{Name: FallbackFileName, Code: FallbackCode}},
		Malformed:   true,
	}
}
