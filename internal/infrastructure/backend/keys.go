package backend

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
)

var snakePattern = regexp.MustCompile(`_([a-z])`)

// CamelCase converte uma chave snake_case para camelCase
func CamelCase(key string) string {
	return snakePattern.ReplaceAllStringFunc(key, func(m string) string {
		return strings.ToUpper(m[1:])
	})
}

// NormalizeKeys renomeia as chaves de primeiro nível de um objeto JSON, ou de
// cada objeto de um array, de snake_case para camelCase. Objetos aninhados são
// mantidos como estão. Chaves já em camelCase têm precedência sobre as
// renomeadas.
func NormalizeKeys(raw []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return raw, nil
	}

	switch trimmed[0] {
	case '{':
		return normalizeObject(trimmed)
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		for i, item := range items {
			item = bytes.TrimSpace(item)
			if len(item) == 0 || item[0] != '{' {
				continue
			}
			normalized, err := normalizeObject(item)
			if err != nil {
				return nil, err
			}
			items[i] = normalized
		}
		return json.Marshal(items)
	default:
		return trimmed, nil
	}
}

func normalizeObject(raw []byte) ([]byte, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}

	out := make(map[string]json.RawMessage, len(fields))
	for key, value := range fields {
		if CamelCase(key) == key {
			out[key] = value
		}
	}
	for key, value := range fields {
		camel := CamelCase(key)
		if camel == key {
			continue
		}
		if _, exists := out[camel]; !exists {
			out[camel] = value
		}
	}
	return json.Marshal(out)
}
