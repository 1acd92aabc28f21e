package namegen

import "strings"

// sequence concatenates the output of its parts left to right. The factory
// guarantees at least two parts and no adjacent Text parts.
type sequence struct {
	parts []Generator
}

// Sequence returns a generator that concatenates the output of every part in
// order. Adjacent fixed strings fuse into a single Text part, so a sequence
// of literals folds all the way down to one literal. No parts yields the
// empty literal and a single part is returned unchanged.
func Sequence(parts ...Generator) Generator {
	fused := fuseLiterals(parts)
	switch len(fused) {
	case 0:
		return Text("")
	case 1:
		return fused[0]
	}
	return &sequence{parts: fused}
}

// fuseLiterals merges runs of Text parts into single Text parts, preserving
// the order of everything else.
func fuseLiterals(parts []Generator) []Generator {
	fused := make([]Generator, 0, len(parts))
	for _, part := range parts {
		txt, ok := part.(Text)
		if ok && len(fused) > 0 {
			if prev, isText := fused[len(fused)-1].(Text); isText {
				fused[len(fused)-1] = prev + txt
				continue
			}
		}
		fused = append(fused, part)
	}
	return fused
}

func (s *sequence) Render(rng Source) string {
	var b strings.Builder
	for _, part := range s.parts {
		b.WriteString(part.Render(rng))
	}
	return b.String()
}

func (s *sequence) Count() int {
	n := 1
	for _, part := range s.parts {
		n *= part.Count()
	}
	return n
}

func (s *sequence) MinLength() int {
	n := 0
	for _, part := range s.parts {
		n += part.MinLength()
	}
	return n
}

func (s *sequence) MaxLength() int {
	n := 0
	for _, part := range s.parts {
		n += part.MaxLength()
	}
	return n
}

// Enumerate lists the cross product of the parts. The first part varies
// slowest, so outputs group by their leading part.
func (s *sequence) Enumerate() []string {
	acc := []string{""}
	for _, part := range s.parts {
		suffixes := part.Enumerate()
		next := make([]string, 0, len(acc)*len(suffixes))
		for _, prefix := range acc {
			for _, suffix := range suffixes {
				next = append(next, prefix+suffix)
			}
		}
		acc = next
	}
	return acc
}
