package sheet

import (
	"errors"
	"fmt"
	"io"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Issue reports a rendered value that failed tokenization.
type Issue struct {
	Name   string
	Value  string
	Source string
	Err    error
}

// CheckValue tokenizes a rendered CSS value and returns an error if the
// text contains bad string or bad url tokens, or if the lexer stops
// before the end of input. This is a syntax smoke test only; it says
// nothing about whether the value suits any particular property.
func CheckValue(v string) error {
	lexer := css.NewLexer(parse.NewInputString(v))
	for {
		tt, text := lexer.Next()
		switch tt {
		case css.BadStringToken:
			return fmt.Errorf("bad string %q", string(text))
		case css.BadURLToken:
			return fmt.Errorf("bad url %q", string(text))
		case css.ErrorToken:
			if err := lexer.Err(); !errors.Is(err, io.EOF) {
				return err
			}
			return nil
		}
	}
}

// CheckSheets renders every sheet and collects tokenization issues.
func CheckSheets(sheets []*Sheet) ([]Issue, error) {
	var issues []Issue
	for _, s := range sheets {
		values, err := s.Render()
		if err != nil {
			return nil, err
		}
		for _, v := range values {
			if err := CheckValue(v.Value); err != nil {
				issues = append(issues, Issue{
					Name:   v.Name,
					Value:  v.Value,
					Source: v.Source,
					Err:    err,
				})
			}
		}
	}
	return issues, nil
}
