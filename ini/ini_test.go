package ini

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sample = `# leading comment
orphan = dropped
[Global]
world.gravity = -9.8
tank.power	35
console.prompt == >>
; another comment
empty
world.gravity = 1.0
[Other]
world.gravity = 3
[Global]
late = ignored
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	tests := []struct {
		section, key string
		want         string
		ok           bool
	}{
		{"Global", "world.gravity", "-9.8", true},
		{"Global", "tank.power", "35", true},
		{"Global", "console.prompt", ">>", true},
		{"Global", "empty", "", true},
		{"Other", "world.gravity", "3", true},
		{"Global", "orphan", "", false},
		{"Global", "late", "", false},
		{"global", "world.gravity", "", false},
		{"Global", "World.Gravity", "", false},
		{"Missing", "x", "", false},
	}
	for _, tt := range tests {
		got, ok := f.Value(tt.section, tt.key)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Value(%q, %q) = %q, %v; want %q, %v", tt.section, tt.key, got, ok, tt.want, tt.ok)
		}
	}

	if names := f.SectionNames(); strings.Join(names, ",") != "Global,Other,Global" {
		t.Errorf("sections = %v", names)
	}
	if keys := f.Keys("Global"); strings.Join(keys, ",") != "world.gravity,tank.power,console.prompt,empty,world.gravity" {
		t.Errorf("keys = %v", keys)
	}
	if v := f.ValueOr("Global", "nope", "def"); v != "def" {
		t.Errorf("ValueOr = %q", v)
	}
}

func TestParseCRLFAndNoTrailingNewline(t *testing.T) {
	f, err := Parse([]byte("[Global]\r\na = 1\r\nb = two words\r\nc = 3"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for key, want := range map[string]string{"a": "1", "b": "two words", "c": "3"} {
		if got, _ := f.Value("Global", key); got != want {
			t.Errorf("%s = %q, want %q", key, got, want)
		}
	}
}

func TestParseSectionHeader(t *testing.T) {
	f, err := Parse([]byte("[Open\nx = 1\n[Closed] trailing\ny = 2\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if v, ok := f.Value("Open", "x"); !ok || v != "1" {
		t.Errorf("unterminated header: %q %v", v, ok)
	}
	if v, ok := f.Value("Closed", "y"); !ok || v != "2" {
		t.Errorf("header with trailing text: %q %v", v, ok)
	}
}

func TestParseLineTooLong(t *testing.T) {
	input := "[Global]\nk = " + strings.Repeat("x", MaxLineLength) + "\n"
	if _, err := Parse([]byte(input)); err == nil {
		t.Error("expected error for overlong line")
	}
}

func TestLexerTokens(t *testing.T) {
	l := NewLexer([]byte("#c\n[s]\nk = v\n"))
	want := []TokenType{
		TokenComment, TokenNewline,
		TokenSection, TokenNewline,
		TokenKey, TokenValue, TokenNewline,
		TokenEOF,
	}
	for i, w := range want {
		tok := l.NextToken()
		if tok.Type != w {
			t.Fatalf("token %d = %v (%d), want %d", i, tok, tok.Type, w)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sx3.ini")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if v, _ := f.Value("Global", "tank.power"); v != "35" {
		t.Errorf("tank.power = %q", v)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.ini")); err == nil {
		t.Error("expected error for missing file")
	}
}
