package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codecraft/backend/internal/model"
)

func TestBuiltin_React(t *testing.T) {
	reg, err := Builtin()
	require.NoError(t, err)

	files := reg.Seed("react")

	require.Len(t, files, 2)
	assert.Equal(t, model.ProjectFile{
		Name:     "App.js",
		Content:  "export default function App() {\n  return <div>Hello World</div>;\n}",
		Language: "javascript",
	}, files["App.js"])
	assert.Equal(t,
		"import React from 'react';\nimport ReactDOM from 'react-dom/client';\nimport App from './App';\n\nconst root = ReactDOM.createRoot(document.getElementById('root'));\nroot.render(<App />);",
		files["index.js"].Content)
	assert.Contains(t, reg.Names(), "react")
}

func TestSeed_UnknownTemplateIsEmpty(t *testing.T) {
	reg, err := Builtin()
	require.NoError(t, err)

	files := reg.Seed("vue")
	assert.NotNil(t, files)
	assert.Empty(t, files)
}

func TestSeed_ReturnsCopies(t *testing.T) {
	reg, err := Builtin()
	require.NoError(t, err)

	first := reg.Seed("react")
	first["App.js"] = model.ProjectFile{Name: "App.js", Content: "changed"}

	assert.NotEqual(t, "changed", reg.Seed("react")["App.js"].Content)
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "Empty payload", input: "  \n", wantErr: "empty"},
		{name: "Invalid YAML", input: "react: [", wantErr: "decode"},
		{name: "Nameless file", input: "web:\n  files:\n    - content: x\n", wantErr: "without a name"},
		{name: "Duplicate file", input: "web:\n  files:\n    - name: a.py\n    - name: a.py\n", wantErr: "duplicate"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}

	t.Run("Explicit language wins", func(t *testing.T) {
		reg, err := Parse([]byte("py:\n  files:\n    - name: main.py\n      content: pass\n      language: python3\n"))
		require.NoError(t, err)
		assert.Equal(t, "python3", reg.Seed("py")["main.py"].Language)
	})
}
