package mock

import "github.com/fwojciec/rescribe"

// Ensure Converter implements rescribe.Converter at compile time.
var _ rescribe.Converter = (*Converter)(nil)

// Converter is a mock implementation of rescribe.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
