package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gqlmeta/internal/build"
	"gqlmeta/internal/diagnostic"
	"gqlmeta/internal/schema"
	"gqlmeta/internal/sdl"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [roots...]",
		Short: "Build and validate the schema of each root",
		Long: `Build a separate schema for every root (default: the configured roots),
concurrently and over one shared type registry, then validate each printed
schema with graphql-go. Exits non-zero when any root fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			graph, err := a.loadGraph(nil)
			if err != nil {
				return err
			}

			roots := a.roots(args)

			rootSets := make([][]string, len(roots))
			for i, root := range roots {
				rootSets[i] = []string{root}
			}

			// Every root is built; failures are reported per root below.
			results, _ := a.newSchema(graph).BuildAll(cmd.Context(), rootSets)

			out := cmd.OutOrStdout()
			var (
				failed []string
				total  diagnostic.Diagnostics
			)

			for i, root := range roots {
				err := a.checkResult(cmd, root, results[i])
				if results[i] != nil {
					total.Merge(results[i].Diagnostics)
				}

				if err != nil {
					errorColor.Fprintf(out, "FAIL ")
					fmt.Fprintf(out, "%s: %v\n", root, err)
					failed = append(failed, root)
					continue
				}

				okColor.Fprintf(out, "ok   ")
				fmt.Fprintf(out, "%s (%d types)\n", root, len(results[i].Types))
			}

			fmt.Fprintf(out, "%s checked: %s\n", plural(len(roots), "root"), summary(total))
			if total.HasErrors() {
				dimColor.Fprintf(out, "  %s\n", tally(total))
			}

			if len(failed) > 0 {
				return fmt.Errorf("check failed for %s", strings.Join(failed, ", "))
			}

			return nil
		},
	}
}

// checkResult validates the SDL of one build and reports its diagnostics.
// A validation failure is recorded as an invalid_sdl error of the build.
func (a *app) checkResult(cmd *cobra.Command, root string, res *build.Result) error {
	if res == nil {
		return errors.New("not built")
	}

	if !res.Diagnostics.HasErrors() {
		// An object root other than Query becomes the query root; input
		// roots are validated on their own.
		var opts []sdl.Option
		for _, t := range res.Types {
			if _, ok := t.(*schema.Object); ok && t.TypeName() == root && root != "Query" {
				opts = append(opts, sdl.WithQuery(root))
			}
		}

		if err := sdl.Check(res.Types, opts...); err != nil {
			res.Diagnostics.AddError(diagnostic.CodeInvalidSDL, err.Error(), root, "")
		}
	}

	printDiagnostics(cmd.ErrOrStderr(), res.Diagnostics, a.verbose())

	if res.Diagnostics.HasErrors() || (a.cfg.Strict && len(res.Diagnostics.Warnings) > 0) {
		return errors.New(summary(res.Diagnostics))
	}

	return nil
}
