// Package ping implements the APING liveness probe. Unlike most message
// kinds, a ping handler is non-terminal on match: pings recur, so the
// same handler can be used both as the outbound probe and as a
// continuously-listening matcher for further echoes.
package ping

import (
	"bytes"

	"github.com/geckolib/geckoproto"
)

const tag = "APING"

// Handler matches and decodes APING frames.
type Handler struct {
	gecko.Base

	Sequence *byte
}

var _ gecko.Handler = (*Handler)(nil)

// New returns a receive-only ping handler template.
func New(parms gecko.ConnectionParms) *Handler {
	return &Handler{Base: gecko.NewBase(parms)}
}

// Request builds the bare probe: APING with no trailing byte.
func Request(parms gecko.ConnectionParms) *Handler {
	h := New(parms)
	h.SetSendBytes(gecko.EncodeEnvelope(parms.SrcID, parms.DstID, []byte(tag)))
	return h
}

// Response builds the device's echo. The original implementation does
// not plumb a real sequence value through its response constructor —
// the trailing byte is always 0x00.
func Response(parms gecko.ConnectionParms) *Handler {
	h := New(parms)
	h.SetSendBytes(gecko.EncodeEnvelope(parms.SrcID, parms.DstID, []byte(tag+"\x00")))
	return h
}

// CanHandle matches both the bare 5-byte probe and the 6-byte echo.
func (h *Handler) CanHandle(payload []byte, parms gecko.ConnectionParms) bool {
	if len(payload) == len(tag) {
		return bytes.Equal(payload, []byte(tag))
	}
	if len(payload) == len(tag)+1 {
		return bytes.HasPrefix(payload, []byte(tag))
	}
	return false
}

// Handle stores the trailing sequence byte when present. Pings recur, so
// the handler is never marked terminal.
func (h *Handler) Handle(payload []byte, remoteAddr string) (bool, error) {
	if len(payload) == len(tag)+1 {
		seq := payload[len(tag)]
		h.Sequence = &seq
	} else {
		h.Sequence = nil
	}
	return false, nil
}
