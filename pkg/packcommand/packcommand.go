// Package packcommand implements the SPACK/PACKS device command channel:
// keypresses and direct memory writes to a pack subsystem on the device.
package packcommand

import (
	"bytes"
	"encoding/binary"

	"github.com/geckolib/geckoproto"
)

const (
	requestTag  = "SPACK"
	responseTag = "PACKS"

	opcodeKeyPress = 0x39
	opcodeSetValue = 0x46
)

// Handler matches and decodes SPACK/PACKS frames.
type Handler struct {
	gecko.Base

	PackType byte

	IsKeyPress bool
	Keycode    byte

	IsSetValue bool
	A, B       byte
	Position   uint16
	NewData    []byte
}

var _ gecko.Handler = (*Handler)(nil)

// New returns a receive-only pack-command handler template.
func New(parms gecko.ConnectionParms) *Handler {
	return &Handler{Base: gecko.NewBase(parms)}
}

// Keypress builds SPACK carrying a single keycode press.
func Keypress(seq, packType, keycode byte, parms gecko.ConnectionParms) *Handler {
	h := New(parms)
	h.Sequence = &seq
	h.PackType = packType
	h.IsKeyPress = true
	h.Keycode = keycode

	inner := []byte{opcodeKeyPress, keycode}
	data := append([]byte(requestTag), seq, packType, byte(len(inner)))
	data = append(data, inner...)
	h.SetSendBytes(gecko.EncodeEnvelope(parms.SrcID, parms.DstID, data))
	return h
}

// SetValue builds SPACK carrying a direct memory write. a and b are
// opaque bytes passed through verbatim — their semantics are not
// documented upstream. value is encoded big-endian into dataLen bytes,
// which become NewData, written at position.
func SetValue(seq, packType, a, b byte, position uint16, dataLen int, value int, parms gecko.ConnectionParms) *Handler {
	h := New(parms)
	h.Sequence = &seq
	h.PackType = packType
	h.IsSetValue = true
	h.A = a
	h.B = b
	h.Position = position

	newData := make([]byte, dataLen)
	v := value
	for i := dataLen - 1; i >= 0; i-- {
		newData[i] = byte(v & 0xff)
		v >>= 8
	}
	h.NewData = newData

	inner := make([]byte, 0, 5+dataLen)
	inner = append(inner, opcodeSetValue, a, b)
	var posBuf [2]byte
	binary.BigEndian.PutUint16(posBuf[:], position)
	inner = append(inner, posBuf[:]...)
	inner = append(inner, newData...)

	data := append([]byte(requestTag), seq, packType, byte(len(inner)))
	data = append(data, inner...)
	h.SetSendBytes(gecko.EncodeEnvelope(parms.SrcID, parms.DstID, data))
	return h
}

// Response builds the bare PACKS ack, terminal on construction.
func Response(parms gecko.ConnectionParms) *Handler {
	h := New(parms)
	h.SetSendBytes(gecko.EncodeEnvelope(parms.SrcID, parms.DstID, []byte(responseTag)))
	h.SetTerminal()
	return h
}

// CanHandle matches the bare 5-byte tag in either direction.
func (h *Handler) CanHandle(payload []byte, parms gecko.ConnectionParms) bool {
	return bytes.HasPrefix(payload, []byte(requestTag)) || bytes.HasPrefix(payload, []byte(responseTag))
}

// Handle decodes SPACK's inner keypress/set_value frame, or recognizes a
// bare PACKS ack. PACKS terminates the handler; SPACK does not (the
// device emits these on its own schedule, they are not request/response).
func (h *Handler) Handle(payload []byte, remoteAddr string) (bool, error) {
	if bytes.HasPrefix(payload, []byte(responseTag)) {
		h.IsKeyPress = false
		h.IsSetValue = false
		h.SetTerminal()
		return false, nil
	}

	if len(payload) < len(requestTag)+3 {
		return false, gecko.NewParseError("packcommand", "SPACK payload too short")
	}

	seq := payload[5]
	h.Sequence = &seq
	h.PackType = payload[6]
	innerLength := int(payload[7])
	inner := payload[8:]
	if len(inner) < innerLength || innerLength < 1 {
		return false, gecko.NewParseError("packcommand", "SPACK inner length mismatch")
	}
	inner = inner[:innerLength]

	switch inner[0] {
	case opcodeKeyPress:
		if len(inner) != 2 {
			return false, gecko.NewParseError("packcommand", "keypress inner frame wrong length")
		}
		h.IsKeyPress = true
		h.IsSetValue = false
		h.Keycode = inner[1]
	case opcodeSetValue:
		if len(inner) < 5 {
			return false, gecko.NewParseError("packcommand", "set_value inner frame too short")
		}
		h.IsSetValue = true
		h.IsKeyPress = false
		h.A = inner[1]
		h.B = inner[2]
		h.Position = binary.BigEndian.Uint16(inner[3:5])
		h.NewData = append([]byte(nil), inner[5:]...)
	default:
		return false, gecko.NewParseError("packcommand", "unrecognized inner opcode")
	}

	return false, nil
}
