package partialstatus

import (
	"testing"

	"github.com/geckolib/geckoproto"
	"github.com/stretchr/testify/assert"
)

func parms() gecko.ConnectionParms {
	return gecko.ConnectionParms{SrcID: []byte("SRCID"), DstID: []byte("DESTID")}
}

func TestCanHandleMatchesDeltaTags(t *testing.T) {
	h := New(parms())
	assert.True(t, h.CanHandle([]byte("STATP\x00"), parms()))
	assert.True(t, h.CanHandle([]byte("STATQ\x00"), parms()))
	assert.False(t, h.CanHandle([]byte("STATU\x00"), parms()))
}

// Reproduces the seed scenario literally: the original decode test
// drives Handle with a STATV-tagged buffer, confirming Handle only
// strips the first 5 bytes positionally and never re-validates the tag.
func TestHandleDecodesSeedVector(t *testing.T) {
	h := New(parms())
	payload := []byte("STATV\x02\x01\x6d\x03\x84\x01\x6e\x84\x0c")

	_, err := h.Handle(payload, "")
	assert.NoError(t, err)
	assert.Equal(t, []Change{
		{Offset: 365, Value: [2]byte{0x03, 0x84}},
		{Offset: 366, Value: [2]byte{0x84, 0x0c}},
	}, h.Changes)
	assert.False(t, h.ShouldRemoveHandler())
}

func TestResponseEncodeRoundTrip(t *testing.T) {
	changes := []Change{
		{Offset: 365, Value: [2]byte{0x03, 0x84}},
		{Offset: 366, Value: [2]byte{0x84, 0x0c}},
	}
	h := Response(changes, parms())
	assert.Equal(t, []byte("<PACKT><SRCCN>DESTID</SRCCN><DESCN>SRCID</DESCN><DATAS>STATP\x02\x01\x6d\x03\x84\x01\x6e\x84\x0c</DATAS></PACKT>"), h.SendBytes())
}
