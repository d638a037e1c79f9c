package dotenv

import (
	"errors"
	"testing"
)

// mapEnv returns a LookupEnv backed by m.
func mapEnv(m map[string]string) LookupEnv {
	return func(name string) (string, bool) {
		v, ok := m[name]

		return v, ok
	}
}

func TestParseValue(t *testing.T) {
	vars := make(Vars)
	vars.Set("B", "hello")
	vars.Set("A", "1")
	vars.Declare("EMPTY")

	res := NewResolver(mapEnv(nil), vars)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", "hello"},
		{"single quotes verbatim", `'$B;x'`, "$B;x"},
		{"single quotes keep backslash", `'a\nb'`, `a\nb`},
		{"double quotes newline escape", `"x\ny"`, "x\ny"},
		{"double quotes escaped quote", `"a\"b"`, `a"b`},
		{"double quotes escaped dollar", `"\$B"`, "$B"},
		{"escaped space", `a\ b`, "a b"},
		{"escaped backslash", `a\\b`, `a\b`},
		{"bare substitution", "$B", "hello"},
		{"braced substitution", "${B}x", "hellox"},
		{"substitution in double quotes", `"$B"`, "hello"},
		{"substitution then text in quotes", `"$B world"`, "hello world"},
		{"adjacent substitutions", "$B$B", "hellohello"},
		{"underscore ends bare name", "$A_B", "1_B"},
		{"dot ends bare name", "$B.x", "hello.x"},
		{"substitution before quote", `$B'x'`, "hellox"},
		{"unknown name", "$NOPE", ""},
		{"declared without value", "x${EMPTY}y", "xy"},
		{"lone dollar", "$", ""},
		{"trailing dollar", "a$", "a"},
		{"dollar before symbol", "$-x", "-x"},
		{"mixed quoting", `'a'"b"c`, "abc"},
		{"trailing comment", "x # comment", "x"},
		{"trailing whitespace then comment", "x \t  #c", "x"},
		{"comment after substitution", "$B #c", "hello"},
		{"hash inside value", "a#b", "a#b"},
		{"braced name with symbols", "${B}-${ A }", "hello-"},
		{"trailing backslash dropped", `a\`, "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseValue(tt.input, res)
			if err != nil {
				t.Fatalf("parseValue(%q) failed: %v", tt.input, err)
			}

			if got != tt.want {
				t.Errorf("parseValue(%q): expected %q, got %q", tt.input, tt.want, got)
			}
		})
	}
}

func TestParseValue_Errors(t *testing.T) {
	res := NewResolver(mapEnv(nil), make(Vars))

	tests := []struct {
		name   string
		input  string
		offset int
	}{
		{"text after whitespace", "x y", 2},
		{"unknown escape", `\q`, 1},
		{"unknown escape in quotes", `"a\tb"`, 3},
		{"unterminated single quote", "'open", 4},
		{"unterminated double quote", `"open`, 4},
		{"unterminated braced substitution", "${open", 5},
		{"unterminated quote after substitution", `"$B`, 2},
		{"escape at end of double quote", `"a\`, 2},
		{"unterminated empty single quote", "'", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseValue(tt.input, res)

			var off syntaxError
			if !errors.As(err, &off) {
				t.Fatalf("parseValue(%q): expected syntax error, got %v", tt.input, err)
			}

			if int(off) != tt.offset {
				t.Errorf("parseValue(%q): expected offset %d, got %d", tt.input, tt.offset, int(off))
			}
		})
	}
}

func TestParseValue_EnvironmentWins(t *testing.T) {
	vars := make(Vars)
	vars.Set("B", "document")

	res := NewResolver(mapEnv(map[string]string{"B": "environment"}), vars)

	got, err := parseValue("$B", res)
	if err != nil {
		t.Fatal(err)
	}

	if got != "environment" {
		t.Errorf("expected environment value, got %q", got)
	}
}

func TestMode_String(t *testing.T) {
	if got := modeWeakQuote.String(); got != "weak-quote" {
		t.Errorf("expected weak-quote, got %q", got)
	}

	if got := mode(99).String(); got != "mode(99)" {
		t.Errorf("expected mode(99), got %q", got)
	}
}
