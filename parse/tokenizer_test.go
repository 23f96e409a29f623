package parse_test

import (
	"testing"

	"github.com/JoschaMetze/edifact-mapper-sub002/edifact"
	"github.com/JoschaMetze/edifact-mapper-sub002/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeSkipsWhitespaceAndEmptySegments(t *testing.T) {
	d := edifact.DefaultDelimiters()
	input := []byte("BGM+E03+DOC'  \n\rUNT+3+001'")
	toks := parse.Tokenize(input, d)
	require.Len(t, toks, 2)
	assert.Equal(t, "BGM+E03+DOC", toks[0].Text)
	assert.Equal(t, "UNT+3+001", toks[1].Text)
}

func TestTokenizeHonorsReleaseCharacter(t *testing.T) {
	d := edifact.DefaultDelimiters()
	input := []byte(`FTX+ACB+++text ?+ and ?: chars'NEXT+1'`)
	toks := parse.Tokenize(input, d)
	require.Len(t, toks, 2)
	assert.Equal(t, `FTX+ACB+++text ?+ and ?: chars`, toks[0].Text)
	assert.Equal(t, "NEXT+1", toks[1].Text)
}

func TestTokenizeNeverPanicsOnArbitraryBytes(t *testing.T) {
	inputs := [][]byte{
		nil,
		{0xff, 0xfe, 0xfd},
		[]byte("UNA"),
		[]byte("UNA:+.? '"),
		append([]byte("UNB+UNOC:3"), 0x80, 0x81, '\''),
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() {
			parse.Tokenize(in, edifact.DefaultDelimiters())
		})
	}
}

func TestSplitElementsPreservesTrailingEmpties(t *testing.T) {
	d := edifact.DefaultDelimiters()
	els := parse.SplitElements("MS+9900::293", d)
	require.Len(t, els, 2)
	assert.Equal(t, []string{"MS"}, els[0])
	assert.Equal(t, []string{"9900", "", "293"}, els[1])
}

func TestSplitElementsHonorsReleaseOnComponentSeparator(t *testing.T) {
	d := edifact.DefaultDelimiters()
	els := parse.SplitElements("ACB+++text ?+ and ?: chars", d)
	require.Len(t, els, 4)
	assert.Equal(t, []string{""}, els[2])
	assert.Equal(t, []string{"text ?+ and ?: chars"}, els[3])
}
