package gecko

import "bytes"

const (
	packtOpen  = "<PACKT>"
	packtClose = "</PACKT>"
	srccnOpen  = "<SRCCN>"
	srccnClose = "</SRCCN>"
	descnOpen  = "<DESCN>"
	descnClose = "</DESCN>"
	datasOpen  = "<DATAS>"
	datasClose = "</DATAS>"
)

// EncodeEnvelope builds a PACKT frame. The local node's id is written to
// the <DESCN> slot and the peer's to <SRCCN> — the tags name the
// protocol-level slot, not "source of this frame", so every outbound
// frame deliberately swaps src/dst relative to how they're stored on the
// handler that built it.
func EncodeEnvelope(srcID, dstID, payload []byte) []byte {
	var buf bytes.Buffer
	buf.WriteString(packtOpen)
	buf.WriteString(srccnOpen)
	buf.Write(dstID)
	buf.WriteString(srccnClose)
	buf.WriteString(descnOpen)
	buf.Write(srcID)
	buf.WriteString(descnClose)
	buf.WriteString(datasOpen)
	buf.Write(payload)
	buf.WriteString(datasClose)
	buf.WriteString(packtClose)
	return buf.Bytes()
}

// IsEnvelope reports whether data is a PACKT frame: it must begin with
// the literal <PACKT> tag and end with the literal </PACKT> tag, with no
// trailing bytes. Partial or trailing-space matches are rejected — the
// protocol runs over UDP with exact datagram boundaries, so strict
// matching surfaces corruption early instead of silently accepting it.
func IsEnvelope(data []byte) bool {
	return bytes.HasPrefix(data, []byte(packtOpen)) && bytes.HasSuffix(data, []byte(packtClose))
}

// DecodeEnvelope locates the three child tags in order and extracts
// their contents. The returned (srcID, dstID) are stored in the order
// they appear on the wire (SRCCN first, then DESCN) even though the wire
// itself has already swapped them relative to the local node's own
// identifiers — a caller comparing against its configured (src, dst)
// always matches locally.
func DecodeEnvelope(data []byte) (srcID, dstID, payload []byte, ok bool) {
	if !IsEnvelope(data) {
		return nil, nil, nil, false
	}

	srccn, ok := extractTag(data, srccnOpen, srccnClose)
	if !ok {
		return nil, nil, nil, false
	}
	descn, ok := extractTag(data, descnOpen, descnClose)
	if !ok {
		return nil, nil, nil, false
	}
	datas, ok := extractTag(data, datasOpen, datasClose)
	if !ok {
		return nil, nil, nil, false
	}

	return srccn, descn, datas, true
}

func extractTag(data []byte, open, close string) ([]byte, bool) {
	start := bytes.Index(data, []byte(open))
	if start < 0 {
		return nil, false
	}
	start += len(open)
	end := bytes.Index(data[start:], []byte(close))
	if end < 0 {
		return nil, false
	}
	return data[start : start+end], true
}
