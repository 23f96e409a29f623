package encode_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/JoschaMetze/edifact-mapper-sub002/edifact"
	"github.com/JoschaMetze/edifact-mapper-sub002/encode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seg(tag string, elements ...string) *edifact.Segment {
	s := edifact.NewSegment(tag)
	for _, e := range elements {
		s.Elements = append(s.Elements, []string{e})
	}
	return s
}

func sampleInterchange() *encode.Interchange {
	return &encode.Interchange{
		Header: seg("UNB", "UNOC:3", "SENDER", "RECEIVER", "260731:1200", "00000"),
		Messages: []encode.Message{
			{
				Header:  seg("UNH", "1", "UTILMD:D:11A:UN:S1.0"),
				Body:    []*edifact.Segment{seg("BGM", "380"), seg("DTM", "137:20260731:102")},
				Trailer: seg("UNT", "0", "1"),
			},
		},
		Trailer: seg("UNZ", "0", "00000"),
	}
}

func TestEncodeRecomputesSegmentAndMessageCounts(t *testing.T) {
	enc := encode.New()
	data, err := enc.Encode(sampleInterchange())
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, "UNH+1+UTILMD:D:11A:UN:S1.0'")
	assert.Contains(t, s, "UNT+4+1'") // UNH + 2 body + UNT = 4
	assert.Contains(t, s, "UNZ+1+00000'")
}

func TestEncodeOmitsUNAForDefaultDelimiters(t *testing.T) {
	enc := encode.New()
	data, err := enc.Encode(sampleInterchange())
	require.NoError(t, err)
	assert.False(t, bytes.HasPrefix(data, []byte("UNA")))
}

func TestEncodeEmitsUNAWhenForced(t *testing.T) {
	enc := encode.New(encode.WithExplicitUNA(true))
	data, err := enc.Encode(sampleInterchange())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("UNA:+.? '")))
}

func TestEncodeToWriterMatchesEncode(t *testing.T) {
	enc := encode.New()
	want, err := enc.Encode(sampleInterchange())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, enc.EncodeToWriter(context.Background(), &buf, sampleInterchange()))
	assert.Equal(t, want, buf.Bytes())
}

func TestEncodeRejectsNilInterchange(t *testing.T) {
	enc := encode.New()
	_, err := enc.Encode(nil)
	assert.Error(t, err)
}
