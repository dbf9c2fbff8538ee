package dtpconv

import (
	"bytes"
	"encoding/xml"
	"io"
)

// element is a minimal DOM node built from an encoding/xml token stream.
// DtpReader only ever needs to inspect attributes and named children, so
// there is no point pulling in a full third-party XML DOM library for
// it — see DESIGN.md for why encoding/xml, the approach the rest of the
// retrieval pack uses for XML formats, is the right level of machinery
// here.
type element struct {
	Name     string
	Attrs    map[string]string
	Children []*element
}

func (e *element) attr(name string) (string, bool) {
	v, ok := e.Attrs[name]
	return v, ok
}

func (e *element) childrenNamed(name string) []*element {
	var out []*element
	for _, c := range e.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// decodeRoot reads the first (and only) top-level element of data into an
// element tree.
func decodeRoot(data []byte) (*element, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, errf("document has no root element")
		}
		if err != nil {
			return nil, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return buildElement(dec, start)
		}
	}
}

func buildElement(dec *xml.Decoder, start xml.StartElement) (*element, error) {
	el := &element{Name: start.Name.Local, Attrs: map[string]string{}}
	for _, a := range start.Attr {
		el.Attrs[a.Name.Local] = a.Value
	}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := buildElement(dec, t)
			if err != nil {
				return nil, err
			}
			el.Children = append(el.Children, child)
		case xml.EndElement:
			return el, nil
		}
	}
}
