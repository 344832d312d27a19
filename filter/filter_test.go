package filter

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Alfareiza/4yousee/fouryousee"
)

func TestCompileFilter(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "valid expression",
			expression: `platform == "ANDROID"`,
			wantErr:    false,
		},
		{
			name:        "empty expression",
			expression:  "  ",
			wantErr:     true,
			errContains: "empty expression",
		},
		{
			name:       "invalid syntax",
			expression: `like(name, "unclosed`,
			wantErr:    true,
		},
		{
			name:       "complex expression",
			expression: `platform in ["ANDROID", "LG"] and lastContactInMinutes > 60 and not like(name, "test")`,
			wantErr:    false,
		},
		{
			name:       "non boolean result",
			expression: `1 + 2`,
			wantErr:    true,
		},
	}

	compiler := NewExprCompiler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := compiler.Compile(tt.expression)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error but got none")
					return
				}
				var compErr *CompilationError
				if !errors.As(err, &compErr) {
					t.Errorf("expected CompilationError, got %T", err)
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if filter == nil {
				t.Errorf("expected filter but got nil")
			}
		})
	}
}

func TestFilterMatch(t *testing.T) {
	player := fouryousee.Record{
		"id":                   float64(7),
		"name":                 "Lobby Screen",
		"platform":             "ANDROID",
		"lastContactInMinutes": float64(90),
		"group":                map[string]any{"id": float64(2), "name": "Stores"},
		"categories":           []any{map[string]any{"id": float64(3)}, map[string]any{"id": float64(8)}},
		"createdAt":            time.Now().AddDate(0, 0, -10).Format(time.RFC3339),
		"player-type":          "kiosk",
		"type":                 "detailed",
		"date":                 "2024-03-01",
		"duration":             float64(15),
	}

	tests := []struct {
		name       string
		expression string
		expected   bool
	}{
		{"field equality", `platform == "ANDROID"`, true},
		{"numeric comparison", `lastContactInMinutes > 60`, true},
		{"nested field", `group.name == "Stores"`, true},
		{"case insensitive contains", `like(name, "lobby")`, true},
		{"prefix", `hasPrefix(name, "kiosk")`, false},
		{"has id of object list", `hasID(categories, 8)`, true},
		{"missing id", `hasID(categories, 9)`, false},
		{"days since", `daysSince(createdAt) >= 9 and daysSince(createdAt) <= 11`, true},
		{"unparseable date", `daysSince(name) == -1`, true},
		{"builtin lower", `lower(platform) == "android"`, true},
		{"builtin len", `len(categories) == 2`, true},
		{"field named duration", `duration >= 15`, true},
		{"field named type", `type == "detailed"`, true},
		{"field named date", `daysSince(date) > 30`, true},
		{"record variable", `Record["player-type"] == "kiosk"`, true},
		{"undefined field is nil", `screenSize == nil`, true},
		{"logical operators", `platform == "LG" or (lastContactInMinutes > 60 and not (name == ""))`, true},
	}

	compiler := NewExprCompiler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := compiler.Compile(tt.expression)
			if err != nil {
				t.Fatalf("failed to compile: %v", err)
			}

			got, err := filter.Match(player)
			if err != nil {
				t.Fatalf("unexpected evaluation error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestApply(t *testing.T) {
	records := []fouryousee.Record{
		{"id": float64(1), "duration": float64(10)},
		{"id": float64(2), "duration": float64(30)},
		{"id": float64(3)},
		{"id": float64(4), "duration": float64(45)},
	}

	filter, err := NewExprCompiler().Compile(`duration > 20`)
	if err != nil {
		t.Fatalf("failed to compile: %v", err)
	}

	matches, err := Apply(filter, records)
	if len(matches) != 2 || matches[0].ID() != "2" || matches[1].ID() != "4" {
		t.Errorf("expected records 2 and 4 in order, got %v", matches)
	}

	// record 3 has no duration to compare
	var evalErr *EvaluationError
	if !errors.As(err, &evalErr) {
		t.Fatalf("expected EvaluationError, got %v", err)
	}
	if evalErr.RecordID != "3" {
		t.Errorf("expected error for record 3, got %s", evalErr.RecordID)
	}
}

func TestFilterManager(t *testing.T) {
	manager := NewManager()

	err := manager.RegisterFilters(map[string]string{
		"offline": `lastContactInMinutes > 60`,
		"android": `platform == "ANDROID"`,
	})
	if err != nil {
		t.Fatalf("failed to register filters: %v", err)
	}

	if names := manager.ListFilters(); strings.Join(names, ",") != "android,offline" {
		t.Errorf("unexpected filter names: %v", names)
	}

	players := []fouryousee.Record{
		{"id": float64(1), "platform": "ANDROID", "lastContactInMinutes": float64(5)},
		{"id": float64(2), "platform": "LG", "lastContactInMinutes": float64(300)},
	}

	offline, err := manager.EvaluateFilter("offline", players)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(offline) != 1 || offline[0].ID() != "2" {
		t.Errorf("expected player 2 offline, got %v", offline)
	}

	if _, err := manager.EvaluateFilter("missing", players); err == nil {
		t.Error("expected error for unknown filter")
	}

	// a name that is not registered is compiled as an expression
	adHoc, err := manager.Select(`platform == "LG"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if adHoc.Expression() != `platform == "LG"` {
		t.Errorf("unexpected expression %q", adHoc.Expression())
	}

	named, err := manager.Select("android")
	if err != nil || named.Expression() != `platform == "ANDROID"` {
		t.Errorf("expected the registered android filter, got %v, %v", named, err)
	}

	err = manager.RegisterFilters(map[string]string{"broken": `platform ==`})
	if err == nil {
		t.Error("expected compilation error")
	}
	if _, ok := manager.GetFilter("broken"); ok {
		t.Error("broken filter must not be registered")
	}
}

func TestCacheEffectiveness(t *testing.T) {
	compiler := NewExprCompiler(WithCache(2))

	first, _ := compiler.Compile(`platform == "LG"`)
	second, _ := compiler.Compile(`platform == "LG"`)
	if first != second {
		t.Error("expected the cached filter to be returned")
	}

	compiler.Compile(`platform == "ANDROID"`)
	compiler.Compile(`platform == "WINDOWS"`)
	if size := compiler.Size(); size != 2 {
		t.Errorf("expected cache size 2, got %d", size)
	}

	third, _ := compiler.Compile(`platform == "LG"`)
	if third == first {
		t.Error("expected the oldest entry to be evicted")
	}

	compiler.Clear()
	if size := compiler.Size(); size != 0 {
		t.Errorf("expected empty cache, got %d", size)
	}
}

func TestCustomFunctions(t *testing.T) {
	compiler := NewExprCompiler(WithCustomFunctions(map[string]any{
		"isPortrait": func(width, height float64) bool { return height > width },
	}))

	filter, err := compiler.Compile(`isPortrait(width, height)`)
	if err != nil {
		t.Fatalf("failed to compile: %v", err)
	}

	ok, err := filter.Match(fouryousee.Record{"width": float64(1080), "height": float64(1920)})
	if err != nil || !ok {
		t.Errorf("expected match, got %v, %v", ok, err)
	}
}
