// Package configfile implements the SFILE/FILES exchange that tells a
// collaborator which config and log XML filenames the device uses.
// Parsing the actual XML is explicitly out of core scope — this package
// only ever exchanges filenames.
package configfile

import (
	"bytes"
	"fmt"

	"github.com/geckolib/geckoproto"
)

const (
	requestTag  = "SFILE"
	responseTag = "FILES"
)

// Handler matches and decodes SFILE/FILES frames.
type Handler struct {
	gecko.Base

	Platform      string
	ConfigVersion int
	LogVersion    int
}

var _ gecko.Handler = (*Handler)(nil)

// New returns a receive-only config-file handler template.
func New(parms gecko.ConnectionParms) *Handler {
	return &Handler{Base: gecko.NewBase(parms)}
}

// Request builds SFILE + seq.
func Request(seq byte, parms gecko.ConnectionParms) *Handler {
	h := New(parms)
	h.Sequence = &seq
	h.SetSendBytes(gecko.EncodeEnvelope(parms.SrcID, parms.DstID, append([]byte(requestTag), seq)))
	return h
}

// Response builds FILES,{platform}_C{cfg:02d}.xml,{platform}_S{log:02d}.xml.
func Response(platform string, configVersion, logVersion int, parms gecko.ConnectionParms) *Handler {
	h := New(parms)
	h.Platform = platform
	h.ConfigVersion = configVersion
	h.LogVersion = logVersion
	body := fmt.Sprintf("%s,%s_C%02d.xml,%s_S%02d.xml", responseTag, platform, configVersion, platform, logVersion)
	h.SetSendBytes(gecko.EncodeEnvelope(parms.SrcID, parms.DstID, []byte(body)))
	return h
}

// CanHandle matches the bare 5-byte tag in either direction.
func (h *Handler) CanHandle(payload []byte, parms gecko.ConnectionParms) bool {
	return bytes.HasPrefix(payload, []byte(requestTag)) || bytes.HasPrefix(payload, []byte(responseTag))
}

// Handle decodes a FILES response, validating that the platform key
// matches between the config and log filenames. A mismatch is a parse
// error, consistent with every other malformed-payload case in this
// repo: Handle reports failure via a returned error rather than
// committing partial state.
func (h *Handler) Handle(payload []byte, remoteAddr string) (bool, error) {
	if bytes.HasPrefix(payload, []byte(requestTag)) {
		if len(payload) >= len(requestTag)+1 {
			seq := payload[len(requestTag)]
			h.Sequence = &seq
		}
		return false, nil
	}

	if !bytes.HasPrefix(payload, []byte(responseTag)) {
		return false, gecko.NewParseError("configfile", "unrecognized tag")
	}

	rest := bytes.TrimPrefix(payload, []byte(responseTag))
	rest = bytes.TrimPrefix(rest, []byte(","))
	parts := bytes.Split(rest, []byte(","))
	if len(parts) != 2 {
		return false, gecko.NewParseError("configfile", "FILES payload missing both filenames")
	}

	cfgPlatform, cfgVersion, err := parseFilename(string(parts[0]), 'C')
	if err != nil {
		return false, gecko.NewParseError("configfile", err.Error())
	}
	logPlatform, logVersion, err := parseFilename(string(parts[1]), 'S')
	if err != nil {
		return false, gecko.NewParseError("configfile", err.Error())
	}
	if cfgPlatform != logPlatform {
		return false, gecko.NewParseError("configfile", "mismatched platform keys between config and log filenames")
	}

	h.Platform = cfgPlatform
	h.ConfigVersion = cfgVersion
	h.LogVersion = logVersion
	h.SetTerminal()
	return false, nil
}

// parseFilename extracts {platform} and the two-digit version from
// "{platform}_{kind}{NN}.xml".
func parseFilename(name string, kind byte) (platform string, version int, err error) {
	marker := fmt.Sprintf("_%c", kind)
	idx := indexOf(name, marker)
	if idx < 0 || !hasSuffixXML(name) {
		return "", 0, fmt.Errorf("malformed filename %q", name)
	}
	platform = name[:idx]
	digits := name[idx+len(marker) : len(name)-len(".xml")]
	if len(digits) != 2 {
		return "", 0, fmt.Errorf("malformed version in filename %q", name)
	}
	if _, err := fmt.Sscanf(digits, "%02d", &version); err != nil {
		return "", 0, fmt.Errorf("malformed version in filename %q", name)
	}
	return platform, version, nil
}

func indexOf(s, sub string) int {
	return bytes.Index([]byte(s), []byte(sub))
}

func hasSuffixXML(s string) bool {
	return len(s) >= len(".xml") && s[len(s)-len(".xml"):] == ".xml"
}
