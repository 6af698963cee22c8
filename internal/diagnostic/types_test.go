package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_AddAndError(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddWarning(CodeEmptyType, "input object has no fields", "BookFilter", "")
	assert.True(t, d.IsValid())

	d.Add(Diagnostic{
		Severity:    DiagnosticError,
		Code:        CodeTypeNotFound,
		Message:     `type "Boook" not found`,
		Type:        "Query",
		Element:     "library.Query.Books(filter)",
		Suggestions: []string{"Book"},
	})

	require.True(t, d.HasErrors())
	assert.Equal(t, []string{CodeTypeNotFound}, d.Codes())
	assert.EqualError(t, d.Error(),
		`[Query] library.Query.Books(filter): [type_not_found] type "Boook" not found (did you mean Book?)`)
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics
	a.AddError(CodeCyclicBuild, "cycle", "A", "")
	b.AddError(CodeMalformedAttribute, "bad", "", "x.Y.Z")
	b.AddInfo("note", "built", "B", "")

	a.Merge(b)
	assert.Equal(t, []string{CodeCyclicBuild, CodeMalformedAttribute}, a.Codes())
	assert.Len(t, a.Infos, 1)
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}
