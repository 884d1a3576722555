package wsv

import "github.com/wsvfmt/wsv-go/textenc"

// Bytes renders the document preserving whitespace/comments and encodes
// it per d.TextEncoding (defaulting to UTF-8), the convenience entry
// point that closes the loop to the out-of-scope text-encoding
// collaborator named in §1.
func (d *Document) Bytes() ([]byte, error) {
	return textenc.Encode(d.SerializePreserving(), d.TextEncoding)
}

// ParseBytes detects data's encoding via its byte-order mark, decodes it,
// and parses the result preserving whitespace/comments.
func ParseBytes(data []byte) (*Document, error) {
	enc, bomLen := textenc.DetectBOM(data)
	s, err := textenc.Decode(data[bomLen:], enc)
	if err != nil {
		return nil, err
	}
	doc, err := ParseDocumentPreserving(s)
	if err != nil {
		return nil, err
	}
	doc.TextEncoding = enc
	return doc, nil
}
