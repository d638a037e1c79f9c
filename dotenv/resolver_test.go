package dotenv

import "testing"

func TestResolver_Resolve(t *testing.T) {
	vars := make(Vars)
	vars.Set("DOC", "doc")
	vars.Set("BOTH", "doc")
	vars.Declare("DECLARED")

	env := mapEnv(map[string]string{
		"ENV":   "env",
		"BOTH":  "env",
		"BLANK": "",
	})

	res := NewResolver(env, vars)

	tests := []struct {
		name string
		want string
	}{
		{"ENV", "env"},
		{"DOC", "doc"},
		{"BOTH", "env"},
		{"BLANK", ""},
		{"DECLARED", ""},
		{"MISSING", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := res.Resolve(tt.name); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestResolver_NilEnv(t *testing.T) {
	vars := make(Vars)
	vars.Set("HOME", "doc")

	if got := NewResolver(nil, vars).Resolve("HOME"); got != "doc" {
		t.Errorf("expected document value with nil env, got %q", got)
	}
}

func TestResolver_SeesLaterAssignments(t *testing.T) {
	vars := make(Vars)
	res := NewResolver(nil, vars)

	if got := res.Resolve("X"); got != "" {
		t.Errorf("expected empty before assignment, got %q", got)
	}

	vars.Set("X", "1")

	if got := res.Resolve("X"); got != "1" {
		t.Errorf("expected value after assignment, got %q", got)
	}
}
