// Package statusblock implements the STATU/STATV bulk status-region
// transfer. The handler is deliberately non-terminal even on the final
// chunk (next == 0) — continuation and final frames are treated
// identically at the core level; assembling the logical block across
// frames is left to the collaborator (see Assembler).
package statusblock

import (
	"encoding/binary"

	"github.com/geckolib/geckoproto"
)

const (
	requestTag  = "STATU"
	responseTag = "STATV"
)

// Handler matches and decodes STATU/STATV frames.
type Handler struct {
	gecko.Base

	Start  uint16
	Length uint16

	Seq  byte
	Next byte
	Data []byte
}

var _ gecko.Handler = (*Handler)(nil)

// New returns a receive-only status-block handler template.
func New(parms gecko.ConnectionParms) *Handler {
	return &Handler{Base: gecko.NewBase(parms)}
}

// Request builds STATU + seq + start(u16 BE) + length(u16 BE).
func Request(seq byte, start, length uint16, parms gecko.ConnectionParms) *Handler {
	h := New(parms)
	h.Sequence = &seq
	h.Start = start
	h.Length = length

	data := append([]byte(requestTag), seq)
	var buf [4]byte
	binary.BigEndian.PutUint16(buf[0:2], start)
	binary.BigEndian.PutUint16(buf[2:4], length)
	data = append(data, buf[:]...)
	h.SetSendBytes(gecko.EncodeEnvelope(parms.SrcID, parms.DstID, data))
	return h
}

// Response builds STATV + seq + next + length(1) + data.
func Response(seq, next byte, data []byte, parms gecko.ConnectionParms) *Handler {
	h := New(parms)
	h.Seq = seq
	h.Next = next
	h.Data = data

	out := append([]byte(responseTag), seq, next, byte(len(data)))
	out = append(out, data...)
	h.SetSendBytes(gecko.EncodeEnvelope(parms.SrcID, parms.DstID, out))
	return h
}

// CanHandle matches the bare 5-byte tag in either direction.
func (h *Handler) CanHandle(payload []byte, parms gecko.ConnectionParms) bool {
	return len(payload) >= 5 && (string(payload[:5]) == requestTag || string(payload[:5]) == responseTag)
}

// Handle decodes a STATV response. Never terminal, per the streaming
// contract: the handler stays registered across every continuation
// frame, including the final one where Next == 0.
func (h *Handler) Handle(payload []byte, remoteAddr string) (bool, error) {
	if len(payload) >= 5 && string(payload[:5]) == requestTag {
		if len(payload) < 10 {
			return false, gecko.NewParseError("statusblock", "STATU payload too short")
		}
		seq := payload[5]
		h.Sequence = &seq
		h.Start = binary.BigEndian.Uint16(payload[6:8])
		h.Length = binary.BigEndian.Uint16(payload[8:10])
		return false, nil
	}

	if len(payload) < 8 {
		return false, gecko.NewParseError("statusblock", "STATV payload too short")
	}

	seq := payload[5]
	next := payload[6]
	length := payload[7]
	if len(payload) < 8+int(length) {
		return false, gecko.NewParseError("statusblock", "STATV declared length exceeds payload")
	}

	h.Seq = seq
	h.Next = next
	h.Data = append([]byte(nil), payload[8:8+int(length)]...)
	return false, nil
}
