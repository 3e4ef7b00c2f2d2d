package stancsv

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestMatchingFilesNumericOrder(t *testing.T) {
	dir := t.TempDir()
	for i := 1; i <= 10; i++ {
		writeFile(t, dir, fmt.Sprintf("foo_%d.csv", i), "a\n1\n")
	}
	writeFile(t, dir, "unrelated.csv", "")
	writeFile(t, dir, "foo_x.csv", "")

	files, err := MatchingFiles(filepath.Join(dir, "foo_"))
	require.NoError(t, err)
	require.Len(t, files, 10)

	// Numeric id order: foo_2 before foo_10.
	for i, cf := range files {
		assert.Equal(t, i+1, cf.ID)
	}
	assert.Equal(t, filepath.Join(dir, "foo_2.csv"), files[1].Path)
	assert.Equal(t, filepath.Join(dir, "foo_10.csv"), files[9].Path)
}

func TestMatchingFilesDuplicateID(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "run_1.csv", "")
	writeFile(t, dir, "run_01.csv", "")

	_, err := MatchingFiles(filepath.Join(dir, "run_"))
	assert.ErrorIs(t, err, ErrDuplicateFileID)
}

func TestMatchingFilesEmpty(t *testing.T) {
	dir := t.TempDir()
	files, err := MatchingFiles(filepath.Join(dir, "none_"))
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestReadAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "out_2.csv", "a,b\n3,4\n")
	writeFile(t, dir, "out_1.csv", "a,b\n1,2\n")

	chains, err := ReadAll(filepath.Join(dir, "out_"))
	require.NoError(t, err)
	require.Len(t, chains, 2)

	// Chains come back in id order, not directory order.
	assert.Equal(t, 1.0, chains[0].SampleMatrix(true).At(0, 0))
	assert.Equal(t, 3.0, chains[1].SampleMatrix(true).At(0, 0))
}

func TestReadAllSchemaAgreesForConcat(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "out_1.csv", "a,b.1,b.2\n1,2,3\n")
	writeFile(t, dir, "out_2.csv", "a,b.1,b.2\n4,5,6\n")

	chains, err := ReadAll(filepath.Join(dir, "out_"))
	require.NoError(t, err)
	assert.True(t, chains[0].Schema().Equal(chains[1].Schema()))
}
