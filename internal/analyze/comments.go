package analyze

import (
	"go/ast"
	"strings"
)

// DirectivePrefix starts every directive line in a doc comment.
const DirectivePrefix = "gql:"

// SplitDoc separates gql: directive lines from the prose of a comment.
// Directive lines are returned without leading comment markers.
func SplitDoc(text string) (string, []string) {
	var (
		prose      []string
		directives []string
	)

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, DirectivePrefix) {
			directives = append(directives, trimmed)
			continue
		}

		prose = append(prose, strings.TrimRight(line, " \t"))
	}

	return strings.TrimSpace(strings.Join(prose, "\n")), directives
}

// splitCommentGroup is SplitDoc over a raw comment group. CommentGroup.Text
// drops "//name:" style directives, so the raw lines are read instead.
func splitCommentGroup(cg *ast.CommentGroup) (string, []string) {
	if cg == nil {
		return "", nil
	}

	lines := make([]string, 0, len(cg.List))
	for _, c := range cg.List {
		switch {
		case strings.HasPrefix(c.Text, "//"):
			line := strings.TrimPrefix(c.Text, "//")
			lines = append(lines, strings.TrimPrefix(line, " "))
		case strings.HasPrefix(c.Text, "/*"):
			body := strings.TrimSuffix(strings.TrimPrefix(c.Text, "/*"), "*/")
			for _, line := range strings.Split(body, "\n") {
				line = strings.TrimSpace(line)
				lines = append(lines, strings.TrimPrefix(strings.TrimPrefix(line, "*"), " "))
			}
		}
	}

	return SplitDoc(strings.Join(lines, "\n"))
}

// roleOf returns the schema role declared by a type's directives.
func roleOf(directives []string) Role {
	for _, d := range directives {
		name, _, _ := strings.Cut(strings.TrimPrefix(d, DirectivePrefix), " ")
		switch name {
		case "input":
			return RoleInput
		case "object":
			return RoleObject
		}
	}

	return RoleNone
}
