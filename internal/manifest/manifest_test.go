package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gqlmeta/internal/analyze"
	"gqlmeta/internal/descriptor"
)

const invoices = `
version: "1"
package: billing.example.com/invoices
types:
  - name: InvoiceFilter
    doc: |
      Filters invoices.
      gql:input
    methods:
      - name: SetStatus
        doc: |
          Invoice status.
          gql:field type=String
        params:
          - name: status
            type: string
            default: open
      - name: SetDueBefore
        params:
          - name: due
            type: "*string"
            default: null
      - name: SetLimit
        params:
          - name: limit
            type: int
      - name: SetOwner
        params:
          - name: owner
    fields:
      - name: Customer
        type: "*Customer"
        tag: 'gql:"customerId,type=ID"'
        doc: Owning customer.
  - name: Customer
    role: object
    methods:
      - name: Invoices
        params:
          - name: filter
            type: "*InvoiceFilter"
        returns: ["[]*InvoiceFilter"]
`

func TestParse(t *testing.T) {
	mf, err := Parse([]byte(invoices))
	require.NoError(t, err)

	assert.Equal(t, "1", mf.Version)
	require.Len(t, mf.Types, 2)
	assert.Equal(t, "input", mf.Types[0].Role, "role defaults to input")
	assert.Equal(t, "object", mf.Types[1].Role)

	methods := mf.Types[0].Methods
	require.Len(t, methods, 4)

	assert.Equal(t, descriptor.Set("open"), methods[0].Params[0].Default)
	assert.Equal(t, descriptor.Set(nil), methods[1].Params[0].Default)
	assert.False(t, methods[2].Params[0].Default.IsSet())
	assert.Equal(t, "", methods[3].Params[0].Type)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing package",
			yaml:    "types:\n  - name: A\n",
			wantErr: "package is required",
		},
		{
			name:    "bad version",
			yaml:    "version: \"2\"\npackage: p\n",
			wantErr: "unsupported manifest version",
		},
		{
			name:    "duplicate type",
			yaml:    "package: p\ntypes:\n  - name: A\n  - name: A\n",
			wantErr: "duplicate type",
		},
		{
			name:    "unknown role",
			yaml:    "package: p\ntypes:\n  - name: A\n    role: enum\n",
			wantErr: "unknown role",
		},
		{
			name:    "unnamed param",
			yaml:    "package: p\ntypes:\n  - name: A\n    methods:\n      - name: SetX\n        params:\n          - type: int\n",
			wantErr: "params[0]: name is required",
		},
		{
			name:    "param not a mapping",
			yaml:    "package: p\ntypes:\n  - name: A\n    methods:\n      - name: SetX\n        params: [x]\n",
			wantErr: "parameter must be a mapping",
		},
		{
			name:    "invalid yaml",
			yaml:    "package: [",
			wantErr: "failed to parse manifest YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestApply(t *testing.T) {
	mf, err := Parse([]byte(invoices))
	require.NoError(t, err)

	graph := analyze.NewTypeGraph()
	require.NoError(t, mf.Apply(graph))

	filterID := analyze.TypeID{PkgPath: "billing.example.com/invoices", Name: "InvoiceFilter"}
	filter := graph.GetType(filterID)
	require.NotNil(t, filter)
	assert.True(t, filter.IsDeclared)
	assert.Equal(t, analyze.RoleInput, filter.Role)
	assert.Equal(t, "Filters invoices.", filter.Documentation)
	assert.Equal(t, []string{"gql:input"}, filter.DirectiveLines)

	setStatus := filter.Method("SetStatus")
	require.NotNil(t, setStatus)
	assert.Equal(t, "Invoice status.", setStatus.Doc())
	assert.Equal(t, []string{"gql:field type=String"}, setStatus.Directives())
	assert.Equal(t, "manifest#InvoiceFilter.SetStatus", setStatus.Position())
	assert.Equal(t, "SetStatus(status string = open)", setStatus.Signature())

	due := filter.Method("SetDueBefore").Params[0]
	assert.Equal(t, analyze.TypeKindPointer, due.Type.Kind)
	assert.Equal(t, descriptor.Set(nil), due.Default)

	assert.Nil(t, filter.Method("SetOwner").Params[0].Type)

	require.Len(t, filter.Fields, 1)
	customerField := filter.Fields[0]
	assert.Equal(t, "customerId,type=ID", customerField.GetTag("gql"))
	require.Equal(t, analyze.TypeKindPointer, customerField.Type.Kind)

	customer := graph.GetType(analyze.TypeID{PkgPath: "billing.example.com/invoices", Name: "Customer"})
	require.NotNil(t, customer)
	assert.Same(t, customer, customerField.Type.ElemType, "forward reference resolves to the declared type")
	assert.Equal(t, analyze.RoleObject, customer.Role)

	invoicesMethod := customer.Method("Invoices")
	require.NotNil(t, invoicesMethod)
	assert.Same(t, filter, invoicesMethod.Params[0].Type.ElemType)
	require.Len(t, invoicesMethod.Results, 1)
	assert.Equal(t, analyze.TypeKindSlice, invoicesMethod.Results[0].Kind)

	assert.Contains(t, graph.Packages, "billing.example.com/invoices")
}

func TestApply_Errors(t *testing.T) {
	t.Run("unknown type", func(t *testing.T) {
		mf, err := Parse([]byte("package: p\ntypes:\n  - name: A\n    fields:\n      - name: B\n        type: Missing\n"))
		require.NoError(t, err)

		err = mf.Apply(analyze.NewTypeGraph())
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown type "Missing"`)
	})

	t.Run("failure leaves the graph unchanged", func(t *testing.T) {
		mf, err := Parse([]byte(`package: p
types:
  - name: A
    fields:
      - name: Next
        type: "*B"
  - name: B
    methods:
      - name: SetC
        params:
          - name: c
            type: Missing
`))
		require.NoError(t, err)

		graph := analyze.NewTypeGraph()
		require.Error(t, mf.Apply(graph))
		assert.Empty(t, graph.Types)
		assert.Empty(t, graph.Packages)
	})

	t.Run("already defined", func(t *testing.T) {
		mf, err := Parse([]byte("package: p\ntypes:\n  - name: A\n"))
		require.NoError(t, err)

		graph := analyze.NewTypeGraph()
		require.NoError(t, mf.Apply(graph))
		assert.ErrorContains(t, mf.Apply(graph), "already defined")
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoices.yaml")
	require.NoError(t, os.WriteFile(path, []byte(invoices), 0o644))

	mf, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, mf.Source)

	graph := analyze.NewTypeGraph()
	require.NoError(t, mf.Apply(graph))

	filter := graph.GetType(analyze.TypeID{PkgPath: "billing.example.com/invoices", Name: "InvoiceFilter"})
	require.NotNil(t, filter)
	assert.Equal(t, "invoices.yaml#InvoiceFilter.SetStatus", filter.Method("SetStatus").Position())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read manifest")
}
