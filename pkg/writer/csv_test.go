package writer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenchmarkCSVWriter_WritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.csv")
	w := NewBenchmarkCSVWriter(path)

	row1 := []string{"sample.txt", "1", "2", "3", "4", "5", "6", "7", "8", "10", "2026-07-31T00:00:00Z"}
	row2 := []string{"sample2.txt", "2", "3", "4", "5", "6", "7", "8", "9", "12", "2026-07-31T01:00:00Z"}

	require.NoError(t, w.AppendRow(row1))
	require.NoError(t, w.AppendRow(row2))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Join(BenchmarkCSVHeader, ","), lines[0])
	assert.Contains(t, lines[1], "sample.txt")
	assert.Contains(t, lines[2], "sample2.txt")
}

func TestBenchmarkCSVWriter_RejectsWrongColumnCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.csv")
	w := NewBenchmarkCSVWriter(path)

	err := w.AppendRow([]string{"too", "few"})
	assert.Error(t, err)
}
