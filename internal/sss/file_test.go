package sss

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeSourceFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

// TestRoundTripFile exercises property 9.
func TestRoundTripFile(t *testing.T) {
	srcDir := t.TempDir()
	destDir := t.TempDir()

	data := bytes500()
	src := writeSourceFile(t, srcDir, "payload.bin", data)

	const n, thresh = 8, 5
	const p = int32(5717)

	paths, err := GenerateFile(context.Background(), src, n, thresh, p, nil)
	require.NoError(t, err)
	require.Len(t, paths, n)

	outPath, err := InterpolateFile(context.Background(), paths[:thresh], destDir, nil)
	require.NoError(t, err)

	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Equal(t, data, got)
	require.Equal(t, filepath.Join(destDir, "payload.bin"), outPath)
}

func TestRoundTripFileMultiChunk(t *testing.T) {
	srcDir := t.TempDir()
	destDir := t.TempDir()

	data := make([]byte, ChunkSize*3+17)
	for i := range data {
		data[i] = byte(i * 7)
	}
	src := writeSourceFile(t, srcDir, "bigfile.dat", data)

	const n, thresh = 5, 3
	const p = int32(5717)

	var reports []float64
	paths, err := GenerateFile(context.Background(), src, n, thresh, p, ProgressFunc(func(f float64) {
		reports = append(reports, f)
	}))
	require.NoError(t, err)
	require.NotEmpty(t, reports)
	require.InDelta(t, 1.0, reports[len(reports)-1], 1e-9)

	outPath, err := InterpolateFile(context.Background(), paths, destDir, nil)
	require.NoError(t, err)

	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestInterpolateFileRejectsTamperedPrime(t *testing.T) {
	srcDir := t.TempDir()
	destDir := t.TempDir()
	src := writeSourceFile(t, srcDir, "secret.txt", []byte("hunter2 password material"))

	paths, err := GenerateFile(context.Background(), src, 4, 2, 5717, nil)
	require.NoError(t, err)

	rewriteHeaderField(t, paths[1], 2, "1613")

	_, err = InterpolateFile(context.Background(), paths[:2], destDir, nil)
	require.ErrorIs(t, err, ErrDifferingPrimes)
}

func TestInterpolateFileRejectsTamperedVersion(t *testing.T) {
	srcDir := t.TempDir()
	destDir := t.TempDir()
	src := writeSourceFile(t, srcDir, "secret.txt", []byte("hunter2 password material"))

	paths, err := GenerateFile(context.Background(), src, 4, 2, 5717, nil)
	require.NoError(t, err)

	rewriteHeaderField(t, paths[1], 0, "2")

	_, err = InterpolateFile(context.Background(), paths[:2], destDir, nil)
	require.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestInterpolateFileRejectsDifferingFilename(t *testing.T) {
	srcDir := t.TempDir()
	destDir := t.TempDir()
	src := writeSourceFile(t, srcDir, "secret.txt", []byte("hunter2 password material"))

	paths, err := GenerateFile(context.Background(), src, 4, 2, 5717, nil)
	require.NoError(t, err)

	rewriteHeaderField(t, paths[1], 3, "evilfile.x") // same length as "secret.txt" so file sizes still match

	_, err = InterpolateFile(context.Background(), paths[:2], destDir, nil)
	require.ErrorIs(t, err, ErrDifferingFilename)
}

func TestInterpolateFileRejectsOverlongFilename(t *testing.T) {
	srcDir := t.TempDir()
	destDir := t.TempDir()
	src := writeSourceFile(t, srcDir, "secret.txt", []byte("hunter2 password material"))

	paths, err := GenerateFile(context.Background(), src, 4, 2, 5717, nil)
	require.NoError(t, err)

	longName := make([]byte, MaxFilenameLength+1)
	for i := range longName {
		longName[i] = 'a'
	}
	rewriteHeaderField(t, paths[0], 3, string(longName))
	rewriteHeaderField(t, paths[1], 3, string(longName))

	_, err = InterpolateFile(context.Background(), paths[:2], destDir, nil)
	require.ErrorIs(t, err, ErrFilenameTooLong)
}

func TestInterpolateFileRejectsDuplicateIndex(t *testing.T) {
	srcDir := t.TempDir()
	destDir := t.TempDir()
	src := writeSourceFile(t, srcDir, "secret.txt", []byte("hunter2 password material"))

	paths, err := GenerateFile(context.Background(), src, 4, 2, 5717, nil)
	require.NoError(t, err)

	rewriteHeaderField(t, paths[1], 1, "1")

	_, err = InterpolateFile(context.Background(), paths[:2], destDir, nil)
	require.ErrorIs(t, err, ErrDuplicateIndex)
}

func TestInspectFile(t *testing.T) {
	srcDir := t.TempDir()
	src := writeSourceFile(t, srcDir, "secret.txt", []byte("hunter2 password material"))

	paths, err := GenerateFile(context.Background(), src, 4, 2, 5717, nil)
	require.NoError(t, err)

	info, err := InspectFile(paths[2])
	require.NoError(t, err)
	require.Equal(t, Version, info.Version)
	require.Equal(t, 3, info.Index)
	require.Equal(t, int32(5717), info.Prime)
	require.Equal(t, "secret.txt", info.Filename)
}

func TestInterpolateFileRejectsTooFewShards(t *testing.T) {
	srcDir := t.TempDir()
	destDir := t.TempDir()
	src := writeSourceFile(t, srcDir, "secret.txt", []byte("hunter2 password material"))

	paths, err := GenerateFile(context.Background(), src, 4, 2, 5717, nil)
	require.NoError(t, err)

	_, err = InterpolateFile(context.Background(), paths[:1], destDir, nil)
	require.ErrorIs(t, err, ErrInsufficientInputs)
}

// rewriteHeaderField rewrites one of the four header lines of a shard file
// in place, leaving version/index/prime/filename at the given 0-based line
// index and the body bytes untouched.
func rewriteHeaderField(t *testing.T, path string, lineIdx int, newValue string) {
	t.Helper()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var lines [4]string
	rest := raw
	for i := 0; i < 4; i++ {
		idx := indexByte(rest, '\n')
		require.GreaterOrEqual(t, idx, 0)
		lines[i] = string(rest[:idx])
		rest = rest[idx+1:]
	}
	lines[lineIdx] = newValue

	out := lines[0] + "\n" + lines[1] + "\n" + lines[2] + "\n" + lines[3] + "\n"
	out += string(rest)
	require.NoError(t, os.WriteFile(path, []byte(out), 0o644))
}

func indexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}

func bytes500() []byte {
	data := make([]byte, 500)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}
