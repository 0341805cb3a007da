package patternlang

import "github.com/pkg/errors"

// ErrBadClass indicates a malformed class such as a reversed range.
var ErrBadClass = errors.New("patternlang: malformed class")

// Runes decodes the class into its members in first-occurrence order.
func (c *Class) Runes() ([]rune, error) {
	body := []rune(c.Raw)
	if len(body) < 2 {
		return nil, errors.Wrapf(ErrBadClass, "%s: %q", c.Pos, c.Raw)
	}
	body = body[1 : len(body)-1]

	var (
		out  []rune
		seen = make(map[rune]bool)
	)
	add := func(r rune) {
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}

	// next returns the rune at i, resolving a backslash escape.
	next := func(i int) (r rune, width int, ok bool) {
		if body[i] != '\\' {
			return body[i], 1, true
		}
		if i+1 >= len(body) {
			return 0, 0, false
		}

		return body[i+1], 2, true
	}

	for i := 0; i < len(body); {
		lo, w, ok := next(i)
		if !ok {
			return nil, errors.Wrapf(ErrBadClass, "%s: trailing backslash in %q", c.Pos, c.Raw)
		}
		i += w
		// An unescaped '-' with a rune after it makes a range.
		if i+1 < len(body) && body[i] == '-' {
			hi, w2, ok := next(i + 1)
			if !ok {
				return nil, errors.Wrapf(ErrBadClass, "%s: trailing backslash in %q", c.Pos, c.Raw)
			}
			if hi < lo {
				return nil, errors.Wrapf(ErrBadClass, "%s: range %c-%c is reversed", c.Pos, lo, hi)
			}
			for r := lo; r <= hi; r++ {
				add(r)
			}
			i += 1 + w2
			continue
		}
		add(lo)
	}

	return out, nil
}
