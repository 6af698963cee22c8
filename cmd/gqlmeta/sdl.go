package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gqlmeta/internal/sdl"
)

func newSDLCmd(a *app) *cobra.Command {
	var (
		output   string
		query    string
		mutation string
	)

	cmd := &cobra.Command{
		Use:   "sdl [roots...]",
		Short: "Print the schema reachable from the root types",
		Long: `Build every type reachable from the given roots (default: the configured
roots) and print them as GraphQL SDL. Build errors are reported per element and
nothing is printed when any remain.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			graph, err := a.loadGraph(nil)
			if err != nil {
				return err
			}

			roots := a.roots(args)

			res, err := a.newSchema(graph).Build(roots...)
			printDiagnostics(cmd.ErrOrStderr(), res.Diagnostics, a.verbose())
			if err != nil {
				return fmt.Errorf("schema has %s", summary(res.Diagnostics))
			}

			var opts []sdl.Option
			if query != "" {
				opts = append(opts, sdl.WithQuery(query))
			}
			if mutation != "" {
				opts = append(opts, sdl.WithMutation(mutation))
			}

			doc, err := sdl.Print(res.Types, opts...)
			if err != nil {
				return err
			}

			if output == "" {
				output = a.cfg.Output
			}

			if output == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), doc)
				return err
			}

			if err := os.WriteFile(output, []byte(doc), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}

			a.logger.Info("schema written", zap.String("path", output), zap.Int("types", len(res.Types)))

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the SDL to a file instead of stdout")
	cmd.Flags().StringVar(&query, "query", "", "query root type name")
	cmd.Flags().StringVar(&mutation, "mutation", "", "mutation root type name")

	return cmd
}
