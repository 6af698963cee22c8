package build

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gqlmeta/internal/analyze"
	"gqlmeta/internal/manifest"
	"gqlmeta/internal/registry"
)

const catalog = `
version: "1"
package: shop.example.com/catalog
types:
  - name: ProductFilter
    role: input
    doc: Filters products.
    methods:
      - name: SetName
        doc: Name fragment.
        params:
          - name: name
            type: "*string"
      - name: SetMinPrice
        params:
          - name: cents
            type: int
            default: 100
      - name: SetCategory
        doc: "Deprecated: use tags."
        params:
          - name: c
            type: "*string"
            default: null
      - name: SetParent
        params:
          - name: parent
            type: "*ProductFilter"
  - name: Product
    role: object
    doc: A product for sale.
    fields:
      - name: ID
        type: string
        tag: 'gql:"id,type=ID!"'
      - name: Name
        type: string
        tag: 'gql:"name"'
    methods:
      - name: Similar
        doc: "Products like this one.\ngql:field"
        params:
          - name: filter
            type: "*ProductFilter"
          - name: first
            type: int
            default: 10
        returns: ["[]*Product"]
  - name: Query
    role: object
    methods:
      - name: Products
        doc: "gql:field"
        params:
          - name: filter
            type: "*ProductFilter"
        returns: ["[]*Product"]
`

const broken = `
version: "1"
package: shop.example.com/broken
types:
  - name: Query
    role: object
    methods:
      - name: Search
        doc: "gql:field\ngql:arg ref type=Ownr"
        params:
          - name: filter
            type: "*BrokenFilter"
          - name: owner
            type: "*Owner"
          - name: ref
        returns: ["[]string"]
  - name: BrokenFilter
    methods:
      - name: SetRange
        params:
          - name: min
            type: int
          - name: max
            type: int
  - name: Owner
    role: object
    fields:
      - name: Name
        type: string
        tag: 'gql:"name"'
`

// graphFrom applies manifests to a fresh graph.
func graphFrom(t *testing.T, docs ...string) *analyze.TypeGraph {
	t.Helper()

	graph := analyze.NewTypeGraph()
	for _, doc := range docs {
		mf, err := manifest.Parse([]byte(doc))
		require.NoError(t, err)
		require.NoError(t, mf.Apply(graph))
	}

	return graph
}

func newRegistry(t *testing.T, docs ...string) *registry.Registry {
	t.Helper()

	reg := registry.New(nil)
	Install(reg, graphFrom(t, docs...))

	return reg
}
