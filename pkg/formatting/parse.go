package formatting

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrParseFailed is returned when content cannot be parsed as JSON, either
// directly or out of a markdown code fence.
var ErrParseFailed = errors.New("failed to parse response")

var jsonFenceRegex = regexp.MustCompile(`(?s)` + "```" + `(?:json)?\s*\n?(.*?)\n?` + "```")

// Parse unmarshals content as JSON into T. Models often wrap their JSON in
// a markdown code fence despite instructions, so a failed direct parse
// retries against the fenced block before giving up with ErrParseFailed.
func Parse[T any](content string) (T, error) {
	var result T
	content = strings.TrimSpace(content)

	if err := json.Unmarshal([]byte(content), &result); err == nil {
		return result, nil
	}

	if matches := jsonFenceRegex.FindStringSubmatch(content); len(matches) >= 2 {
		fenced := strings.TrimSpace(matches[1])
		if err := json.Unmarshal([]byte(fenced), &result); err == nil {
			return result, nil
		}
	}

	return result, fmt.Errorf("%w: %s", ErrParseFailed, content)
}
