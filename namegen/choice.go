package namegen

import "slices"

// choice picks one of its alternatives uniformly at random. The factory
// guarantees at least two alternatives; smaller shapes collapse before a
// choice node is ever allocated.
type choice struct {
	alternatives []Generator
}

// Choice returns a generator producing the output of one alternative, chosen
// uniformly per Render call. No alternatives yields the empty literal and a
// single alternative is returned unchanged.
func Choice(alternatives ...Generator) Generator {
	switch len(alternatives) {
	case 0:
		return Text("")
	case 1:
		return alternatives[0]
	}
	return &choice{alternatives: slices.Clone(alternatives)}
}

func (c *choice) Render(rng Source) string {
	if rng == nil {
		rng = sharedSource{}
	}
	return c.alternatives[rng.IntN(len(c.alternatives))].Render(rng)
}

func (c *choice) Count() int {
	n := 0
	for _, alt := range c.alternatives {
		n += alt.Count()
	}
	return n
}

func (c *choice) MinLength() int {
	min := c.alternatives[0].MinLength()
	for _, alt := range c.alternatives[1:] {
		if n := alt.MinLength(); n < min {
			min = n
		}
	}
	return min
}

func (c *choice) MaxLength() int {
	max := c.alternatives[0].MaxLength()
	for _, alt := range c.alternatives[1:] {
		if n := alt.MaxLength(); n > max {
			max = n
		}
	}
	return max
}

func (c *choice) Enumerate() []string {
	out := make([]string, 0, c.Count())
	for _, alt := range c.alternatives {
		out = append(out, alt.Enumerate()...)
	}
	return out
}
