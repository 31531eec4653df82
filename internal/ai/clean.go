package ai

import "strings"

// CleanJSON strips the markdown fences and surrounding chatter that models
// emit despite instructions, keeping only the outermost JSON value.
func CleanJSON(raw string) string {
	s := strings.TrimSpace(raw)

	// Handle ```json ... ``` or ``` ... ``` wrappers.
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	// If there is still junk around the JSON, keep only from the first
	// opening bracket to its matching last closer.
	start := strings.IndexAny(s, "[{")
	if start == -1 {
		return s
	}
	closer := byte(']')
	if s[start] == '{' {
		closer = '}'
	}
	if end := strings.LastIndexByte(s, closer); end > start {
		s = s[start : end+1]
	}

	return strings.TrimSpace(s)
}
