package packcommand

import (
	"testing"

	"github.com/geckolib/geckoproto"
	"github.com/stretchr/testify/assert"
)

func parms() gecko.ConnectionParms {
	return gecko.ConnectionParms{SrcID: []byte("SRCID"), DstID: []byte("DESTID")}
}

func TestKeypressEncode(t *testing.T) {
	h := Keypress(1, 6, 1, parms())
	assert.Equal(t, []byte("<PACKT><SRCCN>DESTID</SRCCN><DESCN>SRCID</DESCN><DATAS>SPACK\x01\x06\x02\x39\x01</DATAS></PACKT>"), h.SendBytes())
}

func TestSetValueEncodeSeedVector(t *testing.T) {
	h := SetValue(1, 6, 9, 9, 15, 2, 702, parms())
	assert.Equal(t, []byte("<PACKT><SRCCN>DESTID</SRCCN><DESCN>SRCID</DESCN><DATAS>SPACK\x01\x06\x07\x46\x09\x09\x00\x0f\x02\xbe</DATAS></PACKT>"), h.SendBytes())
}

func TestResponseEncode(t *testing.T) {
	h := Response(parms())
	assert.Equal(t, []byte("<PACKT><SRCCN>DESTID</SRCCN><DESCN>SRCID</DESCN><DATAS>PACKS</DATAS></PACKT>"), h.SendBytes())
	assert.True(t, h.ShouldRemoveHandler())
}

func TestHandleDecodesKeypress(t *testing.T) {
	h := New(parms())
	payload := []byte("SPACK\x01\x06\x02\x39\x01")
	assert.True(t, h.CanHandle(payload, parms()))

	_, err := h.Handle(payload, "")
	assert.NoError(t, err)
	assert.True(t, h.IsKeyPress)
	assert.False(t, h.IsSetValue)
	assert.Equal(t, byte(1), h.Keycode)
	assert.False(t, h.ShouldRemoveHandler())
}

func TestHandleDecodesSetValueSeedVector(t *testing.T) {
	h := New(parms())
	payload := []byte("SPACK\x01\x06\x07\x46\x09\x09\x00\x0f\x02\xbe")

	_, err := h.Handle(payload, "")
	assert.NoError(t, err)
	assert.True(t, h.IsSetValue)
	assert.False(t, h.IsKeyPress)
	assert.Equal(t, byte(9), h.A)
	assert.Equal(t, byte(9), h.B)
	assert.Equal(t, uint16(15), h.Position)
	assert.Equal(t, []byte{0x02, 0xbe}, h.NewData)
}

func TestHandleDecodesAck(t *testing.T) {
	h := New(parms())
	_, err := h.Handle([]byte("PACKS"), "")
	assert.NoError(t, err)
	assert.False(t, h.IsKeyPress)
	assert.False(t, h.IsSetValue)
	assert.True(t, h.ShouldRemoveHandler())
}
