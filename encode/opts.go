package encode

type EncodeOption func(*EncState)

// EncodeIndent sets the per-level indent; empty means compact output.
func EncodeIndent(indent string) EncodeOption {
	return func(es *EncState) { es.indent = indent }
}

// EncodeDecl writes an XML declaration before the root element.
func EncodeDecl(v bool) EncodeOption {
	return func(es *EncState) { es.decl = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeSelfClose writes empty elements as <x/> instead of <x></x>.
func EncodeSelfClose(v bool) EncodeOption {
	return func(es *EncState) { es.selfClose = v }
}
