package ai

import (
	"encoding/json"

	"harbor-tasks-backend/internal/apperr"
)

// ExtractJSON returns the first complete top-level JSON array or
// object embedded in free-form model output. Extraction walks the
// text counting bracket depth (string literals are skipped), so
// nested payloads and surrounding commentary are handled.
func ExtractJSON(text string) (json.RawMessage, error) {
	start := -1
	var opener, closer byte

	for i := 0; i < len(text); i++ {
		if text[i] == '[' || text[i] == '{' {
			start = i
			opener = text[i]
			closer = '}'
			if opener == '[' {
				closer = ']'
			}
			break
		}
	}
	if start == -1 {
		return nil, &apperr.GenerationParse{Msg: "no JSON payload found in model output"}
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		ch := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case opener:
			depth++
		case closer:
			depth--
			if depth == 0 {
				span := json.RawMessage(text[start : i+1])
				if !json.Valid(span) {
					return nil, &apperr.GenerationParse{Msg: "extracted payload is not valid JSON"}
				}
				return span, nil
			}
		}
	}

	return nil, &apperr.GenerationParse{Msg: "unterminated JSON payload in model output"}
}

// DecodeJSON extracts the first JSON payload from text and decodes
// it into v.
func DecodeJSON(text string, v interface{}) error {
	span, err := ExtractJSON(text)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(span, v); err != nil {
		return &apperr.GenerationParse{Msg: "model output does not match expected shape", Cause: err}
	}
	return nil
}
