package main

import (
	"encoding/json"
	"fmt"
	"io"

	jmespath "github.com/jmespath-community/go-jmespath"
)

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	if len(args) == 0 {
		_, err := fmt.Fprintln(w)
		return err
	}
	_, err := fmt.Fprintln(w, args...)
	return err
}

// renderJSON prints v as indented JSON, optionally filtered through a
// JMESPath expression. Filtering runs over the JSON form of v so the
// expression sees the wire field names, not Go identifiers.
func renderJSON(w io.Writer, v any, query string) error {
	if query != "" {
		generic, err := toGeneric(v)
		if err != nil {
			return err
		}
		filtered, searchErr := jmespath.Search(query, generic)
		if searchErr != nil {
			return fmt.Errorf("evaluate query %q: %w", query, searchErr)
		}
		v = filtered
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func toGeneric(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal output: %w", err)
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("remarshal output: %w", err)
	}
	return generic, nil
}

func validateQuery(query string) error {
	if query == "" {
		return nil
	}
	if _, err := jmespath.Compile(query); err != nil {
		return fmt.Errorf("invalid query %q: %w", query, err)
	}
	return nil
}

// truncate shortens s for one-line table cells.
func truncate(s string, max int) string {
	if max <= 3 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
