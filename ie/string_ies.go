package ie

import (
	"strings"
	"unicode/utf8"

	"github.com/your-org/pfcp-codec/pfcperr"
)

// maxDNSLabelLen is the RFC 1035 maximum length of a single DNS label.
const maxDNSLabelLen = 63

// encodeDNSName encodes a dot-separated name as length-prefixed labels per
// RFC 1035, the wire form 3GPP uses for APN/DNN and FQDN Node IDs. A label
// longer than 63 octets is truncated rather than rejected: this matches the
// original APN/DNN codec this module is grounded on, which favors a lossy
// but always-encodable result over a build-time error for a malformed
// configuration value.
func encodeDNSName(name string) []byte {
	if name == "" {
		return nil
	}
	labels := strings.Split(name, ".")
	out := make([]byte, 0, len(name)+len(labels))
	for _, label := range labels {
		if len(label) > maxDNSLabelLen {
			label = label[:maxDNSLabelLen]
		}
		out = append(out, byte(len(label)))
		out = append(out, label...)
	}
	return out
}

// decodeDNSName reverses encodeDNSName, rejecting a truncated frame or a
// label whose declared length runs past the end of the buffer.
func decodeDNSName(b []byte) (string, error) {
	var labels []string
	offset := 0
	for offset < len(b) {
		n := int(b[offset])
		offset++
		if n > maxDNSLabelLen {
			return "", &pfcperr.InvalidLength{IEName: "DNSName", Expected: maxDNSLabelLen, Actual: n}
		}
		if offset+n > len(b) {
			return "", &pfcperr.InvalidLength{IEName: "DNSName", Expected: offset + n, Actual: len(b)}
		}
		labels = append(labels, string(b[offset:offset+n]))
		offset += n
	}
	name := strings.Join(labels, ".")
	if !utf8.ValidString(name) {
		return "", &pfcperr.EncodingError{IEName: "DNSName", Cause: errInvalidUTF8}
	}
	return name, nil
}

// ApnDnnIE carries an Access Point Name / Data Network Name, DNS-label
// encoded per TS 23.003 clause 9.1.
type ApnDnnIE struct{ Value string }

func NewApnDnn(v string) ApnDnnIE { return ApnDnnIE{Value: v} }
func (a ApnDnnIE) ToIE() IE       { return New(ApnDnn, encodeDNSName(a.Value)) }
func UnmarshalApnDnn(payload []byte) (ApnDnnIE, error) {
	name, err := decodeDNSName(payload)
	return ApnDnnIE{Value: name}, err
}
