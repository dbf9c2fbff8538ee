package model

// Attribute returns the named attribute attached to v, if any.
func (v *DtpVar) Attribute(name string) (DtpAttribute, bool) {
	for _, a := range v.Attributes {
		if a.Name == name {
			return a, true
		}
	}
	return DtpAttribute{}, false
}

// HasAttribute reports whether v carries an attribute with the given name.
func (v *DtpVar) HasAttribute(name string) bool {
	_, ok := v.Attribute(name)
	return ok
}
