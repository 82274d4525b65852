package statusblock

import (
	"testing"

	"github.com/geckolib/geckoproto"
	"github.com/stretchr/testify/assert"
)

func parms() gecko.ConnectionParms {
	return gecko.ConnectionParms{SrcID: []byte("SRCID"), DstID: []byte("DESTID")}
}

func TestRequestEncodeSeedVector(t *testing.T) {
	h := Request(1, 0, 637, parms())
	assert.Equal(t, []byte("<PACKT><SRCCN>DESTID</SRCCN><DESCN>SRCID</DESCN><DATAS>STATU\x01\x00\x00\x02\x7d</DATAS></PACKT>"), h.SendBytes())
}

func TestResponseEncode(t *testing.T) {
	h := Response(3, 4, []byte("\x01\x02\x03\x04"), parms())
	assert.Equal(t, []byte("<PACKT><SRCCN>DESTID</SRCCN><DESCN>SRCID</DESCN><DATAS>STATV\x03\x04\x04\x01\x02\x03\x04</DATAS></PACKT>"), h.SendBytes())
}

func TestResponseDecodeNeverTerminal(t *testing.T) {
	h := New(parms())
	payload := []byte("STATV\x03\x00\x04\x01\x02\x03\x04")
	assert.True(t, h.CanHandle(payload, parms()))

	_, err := h.Handle(payload, "")
	assert.NoError(t, err)
	assert.Equal(t, byte(3), h.Seq)
	assert.Equal(t, byte(0), h.Next)
	assert.Equal(t, []byte("\x01\x02\x03\x04"), h.Data)
	assert.False(t, h.ShouldRemoveHandler(), "status-block stays armed even on the final chunk")
}

func TestAssemblerAccumulatesUntilDone(t *testing.T) {
	h := New(parms())
	asm := NewAssembler()

	_, _ = h.Handle([]byte("STATV\x01\x04\x02\xaa\xbb"), "")
	asm.Add(h)
	assert.False(t, asm.Done())

	_, _ = h.Handle([]byte("STATV\x01\x00\x02\xcc\xdd"), "")
	asm.Add(h)
	assert.True(t, asm.Done())
	assert.Equal(t, []byte("\xaa\xbb\xcc\xdd"), asm.Bytes())
}
