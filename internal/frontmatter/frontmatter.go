// Package frontmatter splits, parses and emits the YAML block that may open
// an exported article.
package frontmatter

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// ErrMissingClosingDelimiter indicates the document started with a YAML
// frontmatter delimiter but did not contain a closing delimiter.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

// Split separates YAML frontmatter (`---` delimited) from the Markdown body.
// LF and CRLF documents are both accepted.
//
// If the document does not start with a delimiter line, had is false and
// body is the full input.
func Split(content []byte) (fm []byte, body []byte, had bool, err error) {
	nl := detectNewline(content)
	open := []byte(delimiter + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, nil
	}

	rest := content[len(open):]
	if bytes.HasPrefix(rest, open) {
		return []byte{}, rest[len(open):], true, nil
	}

	closeSeq := []byte(nl + delimiter + nl)
	idx := bytes.Index(rest, closeSeq)
	if idx < 0 {
		// A closing delimiter at EOF without a trailing newline still counts.
		if bytes.HasSuffix(rest, []byte(nl+delimiter)) {
			return rest[:len(rest)-len(delimiter)], []byte{}, true, nil
		}
		return nil, nil, false, ErrMissingClosingDelimiter
	}
	return rest[:idx+len(nl)], rest[idx+len(closeSeq):], true, nil
}

// Join emits fm between `---` lines followed by body. fm is expected to end
// with a newline, as yaml encoders produce.
func Join(fm []byte, body []byte) []byte {
	out := make([]byte, 0, len(fm)+len(body)+2*(len(delimiter)+1))
	out = append(out, delimiter+"\n"...)
	out = append(out, fm...)
	if len(fm) > 0 && fm[len(fm)-1] != '\n' {
		out = append(out, '\n')
	}
	out = append(out, delimiter+"\n"...)
	out = append(out, body...)
	return out
}

// ParseYAML parses raw YAML frontmatter (without delimiters) into a map.
func ParseYAML(fm []byte) (map[string]any, error) {
	fields := map[string]any{}
	if len(bytes.TrimSpace(fm)) == 0 {
		return fields, nil
	}
	if err := yaml.Unmarshal(fm, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

// Marshal encodes v as YAML with two-space indentation. Struct fields keep
// their declaration order.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func detectNewline(content []byte) string {
	if i := bytes.IndexByte(content, '\n'); i > 0 && content[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}
