package filter

import (
	"fmt"
	"testing"

	"github.com/Alfareiza/4yousee/fouryousee"
)

// generateTestPlayers creates player records shaped like the API's
func generateTestPlayers(count int) []fouryousee.Record {
	platforms := []string{"ANDROID", "LG", "SAMSUNG", "WINDOWS"}
	players := make([]fouryousee.Record, count)

	for i := range count {
		players[i] = fouryousee.Record{
			"id":                   float64(i),
			"name":                 fmt.Sprintf("Player %d", i),
			"platform":             platforms[i%len(platforms)],
			"lastContactInMinutes": float64(i % 500),
			"group":                map[string]any{"id": float64(i % 7)},
		}
	}

	return players
}

func BenchmarkCompile(b *testing.B) {
	expressions := []struct {
		name string
		expr string
	}{
		{"simple", `platform == "ANDROID"`},
		{"complex", `platform in ["ANDROID", "LG"] and lastContactInMinutes > 60 and like(name, "player")`},
	}

	for _, tc := range expressions {
		b.Run(tc.name, func(b *testing.B) {
			compiler := NewExprCompiler()
			b.ReportAllocs()
			for b.Loop() {
				if _, err := compiler.Compile(tc.expr); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCompileWithCache(b *testing.B) {
	compiler := NewExprCompiler(WithCache(100))
	expression := `platform == "ANDROID" and lastContactInMinutes > 60`

	b.ReportAllocs()
	for b.Loop() {
		if _, err := compiler.Compile(expression); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkApply(b *testing.B) {
	players := generateTestPlayers(1000)
	filter, err := NewExprCompiler().Compile(`platform == "LG" and group.id > 2`)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for b.Loop() {
		if _, err := Apply(filter, players); err != nil {
			b.Fatal(err)
		}
	}
}
