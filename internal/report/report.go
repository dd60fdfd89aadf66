// Package report renders user data records for the CLI and describes how a
// record changed between two points in time.
package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"primamateria.systems/reliquary/pkg/coerce"
	"primamateria.systems/reliquary/pkg/datastore"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

var ErrUnsupportedFormat = errors.New("unsupported output format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %v", ErrUnsupportedFormat, s)
	}
}

// Render prints rec in format. Text output is one "key = value" line per key
// in record order; JSON output is indented and keeps record order.
func Render(rec *datastore.Record, format Format) (string, error) {
	switch format {
	case FormatText, "":
		var sb strings.Builder
		rec.Each(func(key string, value any) {
			fmt.Fprintf(&sb, "%v = %v\n", key, Value(value))
		})
		return sb.String(), nil
	case FormatJSON:
		raw, err := rec.MarshalJSON()
		if err != nil {
			return "", fmt.Errorf("error converting to json: %w", err)
		}
		var out bytes.Buffer
		if err := json.Indent(&out, raw, "", "  "); err != nil {
			return "", fmt.Errorf("error indenting json: %w", err)
		}
		out.WriteString("\n")
		return out.String(), nil
	default:
		return "", fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
}

// Value formats a single stored value the way it would be written back into
// an annotation.
func Value(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return v
	case float64:
		return coerce.FormatNumber(v)
	case map[string]any, []any:
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(raw)
	default:
		return fmt.Sprint(v)
	}
}

// Diff compares the text renderings of before and after line by line.
func Diff(before, after *datastore.Record) []diffmatchpatch.Diff {
	a, _ := Render(before, FormatText)
	b, _ := Render(after, FormatText)
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffMain(ca, cb, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

// Changed reports whether diffs contain anything besides equal runs.
func Changed(diffs []diffmatchpatch.Diff) bool {
	for _, d := range diffs {
		if d.Type != diffmatchpatch.DiffEqual {
			return true
		}
	}
	return false
}

// Pretty prints diffs with a "+ " or "- " marker on changed lines and two
// spaces of indent on unchanged ones.
func Pretty(diffs []diffmatchpatch.Diff) string {
	var sb strings.Builder
	for _, d := range diffs {
		marker := "  "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			marker = "+ "
		case diffmatchpatch.DiffDelete:
			marker = "- "
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(marker)
			sb.WriteString(line)
		}
	}
	return sb.String()
}
