package encode

type EncodeOption func(*EncState)

// EncodeIndent renders containers over several lines, indenting each
// level by n spaces. n <= 0 gives compact output.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// EncodeStrict rejects infinities and NaNs, which have no RFC 8259 form.
func EncodeStrict(v bool) EncodeOption {
	return func(es *EncState) { es.strict = v }
}
