package main

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"gqlmeta/internal/analyze"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "analyze [packages...]",
		Short: "List the types gqlmeta can build",
		Long: `Load Go packages and manifests and list every named struct with its schema
role, tagged fields and methods. Packages default to the configured ones.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			graph, err := a.loadGraph(args)
			if err != nil {
				return err
			}

			types := sortedTypes(graph)
			out := cmd.OutOrStdout()

			if dump {
				dumpTypes(out, types)
				return nil
			}

			return listTypes(out, types)
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "dump the analyzed type graph")

	return cmd
}

func sortedTypes(graph *analyze.TypeGraph) []*analyze.TypeInfo {
	types := make([]*analyze.TypeInfo, 0, len(graph.Types))
	for _, t := range graph.Types {
		if t.Kind == analyze.TypeKindStruct {
			types = append(types, t)
		}
	}

	sort.Slice(types, func(i, j int) bool {
		return types[i].ID.String() < types[j].ID.String()
	})

	return types
}

func listTypes(w io.Writer, types []*analyze.TypeInfo) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "NAME\tROLE\tFIELDS\tMETHODS\tSOURCE")
	for _, t := range types {
		source := "go"
		if t.IsDeclared {
			source = "manifest"
		}

		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", t.ID.Short(), t.Role, len(t.Fields), len(t.Methods), source)
	}

	return tw.Flush()
}

// dumpTypes prints each type. The depth limit keeps go/types internals and
// recursive types short.
func dumpTypes(w io.Writer, types []*analyze.TypeInfo) {
	cfg := spew.ConfigState{
		Indent:                  "  ",
		MaxDepth:                4,
		DisableMethods:          true,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}

	for _, t := range types {
		fmt.Fprintf(w, "%s\n", t.ID)
		cfg.Fdump(w, t)
	}
}
