package hello

import (
	"testing"

	"github.com/geckolib/geckoproto"
	"github.com/stretchr/testify/assert"
)

func TestBroadcastEncode(t *testing.T) {
	h := Broadcast()
	assert.Equal(t, []byte("<HELLO>1</HELLO>"), h.SendBytes())
}

func TestClientEncode(t *testing.T) {
	h := Client([]byte("abc123"))
	assert.Equal(t, []byte("<HELLO>abc123</HELLO>"), h.SendBytes())
}

func TestResponseEncode(t *testing.T) {
	h := Response([]byte("SPA"), "Name")
	assert.Equal(t, []byte("<HELLO>SPA|Name</HELLO>"), h.SendBytes())
}

func TestResponseDecode(t *testing.T) {
	h := New(parms())
	assert.True(t, h.CanHandle([]byte("<HELLO>SPA|Name</HELLO>"), parms()))

	_, err := h.Handle([]byte("<HELLO>SPA|Name</HELLO>"), "")
	assert.NoError(t, err)
	assert.Equal(t, []byte("SPA"), h.SpaIdentifier)
	assert.Equal(t, "Name", h.SpaName)
	assert.False(t, h.WasBroadcastDiscovery)
}

func TestBroadcastDecode(t *testing.T) {
	h := New(parms())
	_, err := h.Handle([]byte("<HELLO>1</HELLO>"), "")
	assert.NoError(t, err)
	assert.True(t, h.WasBroadcastDiscovery)
}

func TestClientDecode(t *testing.T) {
	h := New(parms())
	_, err := h.Handle([]byte("<HELLO>client-9</HELLO>"), "")
	assert.NoError(t, err)
	assert.Equal(t, []byte("client-9"), h.ClientIdentifier)
}

func TestCanHandleRejectsNonHello(t *testing.T) {
	h := New(parms())
	assert.False(t, h.CanHandle([]byte("<PACKT>x</PACKT>"), parms()))
}

func parms() gecko.ConnectionParms {
	return gecko.ConnectionParms{SrcID: []byte("SRCID"), DstID: []byte("DESTID")}
}
