package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"gqlmeta/internal/diagnostic"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	okColor      = color.New(color.FgGreen, color.Bold)
	dimColor     = color.New(color.Faint)
)

// printDiagnostics writes errors then warnings, one per line. Infos are
// written only when verbose.
//
// Example output:
//
//	error   unresolvable_type  catalog.ProductFilter.SetRange (filter.yaml#ProductFilter.SetRange)
//	        method must accept exactly one parameter, SetRange accepts 2
//	        did you mean: Product?
func printDiagnostics(w io.Writer, diags diagnostic.Diagnostics, verbose bool) {
	for _, d := range diags.Errors {
		printDiagnostic(w, errorColor, "error  ", d)
	}

	for _, d := range diags.Warnings {
		printDiagnostic(w, warningColor, "warning", d)
	}

	if !verbose {
		return
	}

	for _, d := range diags.Infos {
		printDiagnostic(w, dimColor, "info   ", d)
	}
}

func printDiagnostic(w io.Writer, c *color.Color, label string, d diagnostic.Diagnostic) {
	subject := d.Element
	if subject == "" {
		subject = d.Type
	}

	c.Fprintf(w, "%s ", label)
	fmt.Fprintf(w, "%-18s %s\n", d.Code, subject)
	fmt.Fprintf(w, "        %s\n", d.Message)

	if len(d.Suggestions) > 0 {
		dimColor.Fprintf(w, "        did you mean: %s?\n", strings.Join(d.Suggestions, ", "))
	}
}

// summary renders "2 errors, 1 warning".
func summary(diags diagnostic.Diagnostics) string {
	return plural(len(diags.Errors), "error") + ", " + plural(len(diags.Warnings), "warning")
}

// tally renders error counts per code in code order, e.g.
// "type_not_found: 1, unresolvable_type: 2".
func tally(diags diagnostic.Diagnostics) string {
	counts := make(map[string]int)
	for _, code := range diags.Codes() {
		counts[code]++
	}

	codes := make([]string, 0, len(counts))
	for code := range counts {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	parts := make([]string, 0, len(codes))
	for _, code := range codes {
		parts = append(parts, fmt.Sprintf("%s: %d", code, counts[code]))
	}

	return strings.Join(parts, ", ")
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}

	return fmt.Sprintf("%d %ss", n, word)
}
