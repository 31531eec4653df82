package ai

import "testing"

func TestCleanJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain array", `["a", "b"]`, `["a", "b"]`},
		{"plain object", `{"k": 1}`, `{"k": 1}`},
		{"json fence", "```json\n[\"a\"]\n```", `["a"]`},
		{"bare fence", "```\n{\"k\": 1}\n```", `{"k": 1}`},
		{"leading chatter", `Here is the result: ["a", "b"]`, `["a", "b"]`},
		{"trailing chatter", `{"k": 1} Hope this helps!`, `{"k": 1}`},
		{"whitespace", "  \n  [1, 2]  \n", `[1, 2]`},
		{"no json at all", "cannot comply", "cannot comply"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanJSON(tt.in); got != tt.want {
				t.Errorf("CleanJSON(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
