package sanitizer

import "strings"

// Strategy is a single normalization step; a Pipeline applies them in order.
type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

func lower(s string) string {
	return strings.ToLower(s)
}

// SanitizeName normalizes a hotel or guest name as stored on the record:
// whitespace collapsed, case preserved.
func SanitizeName(input string) string {
	p := Pipeline{
		TrimAndNormalize,
	}
	return p.Apply(input)
}

// SanitizeCity normalizes a city as stored on the hotel record.
func SanitizeCity(input string) string {
	p := Pipeline{
		TrimAndNormalize,
	}
	return p.Apply(input)
}

// IndexKey produces the lookup key for the city/name indices. Search is
// case-insensitive exact match, so keys are the lowercased normalized form.
func IndexKey(input string) string {
	p := Pipeline{
		TrimAndNormalize,
		lower,
	}
	return p.Apply(input)
}
