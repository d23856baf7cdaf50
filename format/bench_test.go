package format_test

import (
	"testing"

	"github.com/velocity-lang/velocity/format"
)

// BenchmarkSprintf_Mixed measures the template scan with interleaved
// literals, escapes and placeholders.
func BenchmarkSprintf_Mixed(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = format.Sprintf("x={} y={} {{raw}} z={}", 1, 2.5, "three")
	}
}

// BenchmarkSprintf_LiteralOnly isolates the literal copy path.
func BenchmarkSprintf_LiteralOnly(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = format.Sprintf("a perfectly ordinary line of text")
	}
}

// BenchmarkFormatted_Int measures default-capability dispatch for the most
// common argument type.
func BenchmarkFormatted_Int(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = format.Formatted(i)
	}
}
