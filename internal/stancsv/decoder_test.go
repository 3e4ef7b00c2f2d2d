package stancsv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `# model = eight_schools
# method = sample
lp__,theta.1,theta.2
# adaptation terminated
-4.5,0.1,0.2
-4.2,0.3,0.4
# elapsed time
-4.0,0.5,0.6
`

func TestReadChain(t *testing.T) {
	chain, err := ReadChain(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, []string{"lp__", "theta"}, chain.Schema().Names())
	assert.Equal(t, 3, chain.Schema().Len())

	m := chain.SampleMatrix(true)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, -4.5, m.At(0, 0))
	assert.Equal(t, 0.4, m.At(1, 2))
	assert.Equal(t, 0.5, m.At(2, 1))

	assert.True(t, chain.Ordered())
	assert.Equal(t, 0, chain.Warmup())
	thinning, ok := chain.Thinning()
	assert.True(t, ok)
	assert.Equal(t, 1, thinning)
}

func TestReadChainOptions(t *testing.T) {
	chain, err := ReadChain(strings.NewReader(sampleCSV), WithWarmup(2), WithThinning(4))
	require.NoError(t, err)

	assert.Equal(t, 2, chain.Warmup())
	assert.Equal(t, 1, chain.SampleMatrix(false).Rows())
	thinning, _ := chain.Thinning()
	assert.Equal(t, 4, thinning)
}

func TestReadChainRecordAccess(t *testing.T) {
	chain, err := ReadChain(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	var draws int
	for rec := range chain.Posterior() {
		theta, err := rec.View("theta")
		require.NoError(t, err)
		assert.Equal(t, 2, theta.Shape().NumElements())
		draws++
	}
	assert.Equal(t, 3, draws)
}

func TestReadChainNoHeader(t *testing.T) {
	_, err := ReadChain(strings.NewReader("# only comments\n# nothing else\n"))
	assert.ErrorIs(t, err, ErrNoHeader)

	_, err = ReadChain(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestReadChainShortRow(t *testing.T) {
	csv := "a,b,c\n1,2,3\n4,5\n"
	_, err := ReadChain(strings.NewReader(csv))
	assert.ErrorIs(t, err, ErrTooFewFields)
	// The short line is identified by number.
	assert.Contains(t, err.Error(), "line 3")
}

func TestReadChainLongRow(t *testing.T) {
	csv := "a,b\n1,2,3\n"
	_, err := ReadChain(strings.NewReader(csv))
	assert.ErrorIs(t, err, ErrTooManyFields)
}

func TestReadChainBadField(t *testing.T) {
	csv := "a,b\n1,oops\n"
	_, err := ReadChain(strings.NewReader(csv))
	assert.ErrorIs(t, err, ErrBadField)
	assert.Contains(t, err.Error(), "field 2")
}

func TestReadChainWhitespaceFields(t *testing.T) {
	csv := "a,b\n 1.5 ,\t-2e3\n"
	chain, err := ReadChain(strings.NewReader(csv))
	require.NoError(t, err)

	m := chain.SampleMatrix(true)
	assert.Equal(t, 1.5, m.At(0, 0))
	assert.Equal(t, -2000.0, m.At(0, 1))
}

func TestReadChainEmptyData(t *testing.T) {
	chain, err := ReadChain(strings.NewReader("a,b.1,b.2\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, chain.SampleMatrix(true).Rows())
	assert.Equal(t, 3, chain.Schema().Len())
}

func TestReadChainTrailingComments(t *testing.T) {
	csv := "a\n1\n2\n#  elapsed time: 0.1 seconds\n"
	chain, err := ReadChain(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, chain.SampleMatrix(true).Rows())
}

func TestIsComment(t *testing.T) {
	assert.True(t, isComment("# hello"))
	assert.True(t, isComment("   # indented"))
	assert.False(t, isComment("a,b,#c"))
	assert.False(t, isComment(""))
}
