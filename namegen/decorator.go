package namegen

// decorator applies a transform to everything its inner generator produces.
// Transforms must preserve rune length and map distinct inputs to distinct
// outputs, so Count, MinLength and MaxLength pass straight through.
type decorator struct {
	inner     Generator
	transform Transform
}

// Decorate returns a generator that applies transform to every output of
// inner. A fixed string is transformed immediately and returned as a new
// literal. A nil transform returns inner unchanged.
func Decorate(inner Generator, transform Transform) Generator {
	if transform == nil {
		return inner
	}
	if txt, ok := inner.(Text); ok {
		return Text(transform(string(txt)))
	}
	return &decorator{inner: inner, transform: transform}
}

func (d *decorator) Render(rng Source) string {
	return d.transform(d.inner.Render(rng))
}

func (d *decorator) Count() int { return d.inner.Count() }

func (d *decorator) MinLength() int { return d.inner.MinLength() }

func (d *decorator) MaxLength() int { return d.inner.MaxLength() }

func (d *decorator) Enumerate() []string {
	inner := d.inner.Enumerate()
	out := make([]string, len(inner))
	for i, s := range inner {
		out[i] = d.transform(s)
	}
	return out
}
