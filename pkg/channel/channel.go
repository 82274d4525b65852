// Package channel implements the CURCH/CHCUR current RF channel exchange.
package channel

import (
	"bytes"

	"github.com/geckolib/geckoproto"
)

const (
	requestTag  = "CURCH"
	responseTag = "CHCUR"
)

// Handler matches and decodes CURCH/CHCUR frames.
type Handler struct {
	gecko.Base

	Channel        uint8
	SignalStrength uint8
}

var _ gecko.Handler = (*Handler)(nil)

// New returns a receive-only channel handler template.
func New(parms gecko.ConnectionParms) *Handler {
	return &Handler{Base: gecko.NewBase(parms)}
}

// Request builds CURCH + seq.
func Request(seq byte, parms gecko.ConnectionParms) *Handler {
	h := New(parms)
	h.Sequence = &seq
	h.SetSendBytes(gecko.EncodeEnvelope(parms.SrcID, parms.DstID, append([]byte(requestTag), seq)))
	return h
}

// Response builds CHCUR + channel + signal_strength.
func Response(channel, signalStrength uint8, parms gecko.ConnectionParms) *Handler {
	h := New(parms)
	h.Channel = channel
	h.SignalStrength = signalStrength
	h.SetSendBytes(gecko.EncodeEnvelope(parms.SrcID, parms.DstID, append([]byte(responseTag), channel, signalStrength)))
	return h
}

// CanHandle matches the bare 5-byte tag in either direction.
func (h *Handler) CanHandle(payload []byte, parms gecko.ConnectionParms) bool {
	return bytes.HasPrefix(payload, []byte(requestTag)) || bytes.HasPrefix(payload, []byte(responseTag))
}

// Handle decodes a CHCUR response. Terminal on response.
func (h *Handler) Handle(payload []byte, remoteAddr string) (bool, error) {
	if bytes.HasPrefix(payload, []byte(requestTag)) {
		if len(payload) >= len(requestTag)+1 {
			seq := payload[len(requestTag)]
			h.Sequence = &seq
		}
		return false, nil
	}

	if len(payload) < len(responseTag)+2 {
		return false, gecko.NewParseError("channel", "CHCUR payload too short")
	}

	h.Channel = payload[len(responseTag)]
	h.SignalStrength = payload[len(responseTag)+1]
	h.SetTerminal()
	return false, nil
}
