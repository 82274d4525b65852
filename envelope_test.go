package gecko

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeEnvelopeRoundTrip(t *testing.T) {
	frame := EncodeEnvelope([]byte("SRCID"), []byte("DESTID"), []byte("CONTENT"))
	assert.Equal(t,
		"<PACKT><SRCCN>DESTID</SRCCN><DESCN>SRCID</DESCN><DATAS>CONTENT</DATAS></PACKT>",
		string(frame))
}

func TestIsEnvelopeStrictBoundaries(t *testing.T) {
	assert.True(t, IsEnvelope([]byte("<PACKT><SRCCN>A</SRCCN><DESCN>B</DESCN><DATAS>C</DATAS></PACKT>")))
	assert.False(t, IsEnvelope([]byte("garbage<PACKT>x</PACKT>")))
	assert.False(t, IsEnvelope([]byte("<PACKT>x</PACKT>trailing")))
	assert.False(t, IsEnvelope([]byte("<PACKT>x</PACKT> ")))
	assert.False(t, IsEnvelope([]byte("not a packet")))
}

func TestDecodeEnvelope(t *testing.T) {
	frame := EncodeEnvelope([]byte("SRCID"), []byte("DESTID"), []byte("CONTENT"))

	src, dst, payload, ok := DecodeEnvelope(frame)
	assert.True(t, ok)
	assert.Equal(t, "DESTID", string(src))
	assert.Equal(t, "SRCID", string(dst))
	assert.Equal(t, "CONTENT", string(payload))
}

func TestDecodeEnvelopeRejectsMalformed(t *testing.T) {
	_, _, _, ok := DecodeEnvelope([]byte("not an envelope"))
	assert.False(t, ok)
}
