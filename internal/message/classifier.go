package message

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"commit-assistant/internal/status"
)

var (
	addedRe    = regexp.MustCompile(`new file:\s+(.+)`)
	deletedRe  = regexp.MustCompile(`deleted:\s+(.+)`)
	modifiedRe = regexp.MustCompile(`modified:\s+(.+)`)
	renamedRe  = regexp.MustCompile(`renamed:\s+(.+)\s+->\s+(.+)`)
)

type Option func(*Classifier)

// WithStrict surfaces extraction failures as errors instead of falling back
// to the plural template.
func WithStrict() Option {
	return func(c *Classifier) { c.strict = true }
}

// WithStructuredParser counts parsed records instead of marker substrings.
func WithStructuredParser() Option {
	return func(c *Classifier) { c.structured = true }
}

func WithLocale(l Locale) Option {
	return func(c *Classifier) { c.locale = l }
}

// Classifier turns a status report into a one-line commit message.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	strict     bool
	structured bool
	locale     Locale
}

func New(opts ...Option) *Classifier {

	c := &Classifier{locale: English}
	for _, o := range opts {
		o(c)
	}

	return c
}

type Result struct {
	Message string
	Shape   Shape
	Tally   status.Tally
}

func (c *Classifier) Generate(report string) (string, error) {

	res, err := c.Classify(report)
	if err != nil {
		return "", err
	}

	return res.Message, nil
}

func (c *Classifier) Classify(report string) (Result, error) {

	in := c.read(report)
	shape := ShapeOf(in.tally)

	res := Result{Shape: shape, Tally: in.tally}

	msg, err := c.render(shape, in)
	if err != nil {
		var xe *ExtractionError
		if c.strict || !errors.As(err, &xe) {
			return res, err
		}
		msg = c.plural(shape, in.tally)
	}

	res.Message = msg
	return res, nil
}

// input is a report reduced to what template selection needs.
type input struct {
	tally    status.Tally
	filtered string
	records  []status.ChangeRecord
}

func (c *Classifier) read(report string) input {

	if c.structured {
		records := status.Parse(report)
		return input{
			tally:   status.TallyRecords(records),
			records: records,
		}
	}

	filtered := status.Filter(report)
	return input{
		tally:    status.CountMarkers(filtered),
		filtered: filtered,
	}
}

func (c *Classifier) render(shape Shape, in input) (string, error) {

	l := c.locale

	switch shape {

	case Empty:
		return l.Fallback, nil

	case AddedOnly:
		if in.tally.Added != 1 {
			return fmt.Sprintf(l.AddMany, in.tally.Added), nil
		}
		path, err := c.single(in, status.Added, addedRe)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(l.AddOne, path), nil

	case DeletedOnly:
		if in.tally.Deleted != 1 {
			return fmt.Sprintf(l.RemoveMany, in.tally.Deleted), nil
		}
		path, err := c.single(in, status.Deleted, deletedRe)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(l.RemoveOne, path), nil

	case RenamedOnly:
		if in.tally.Renamed != 1 {
			return fmt.Sprintf(l.RenameMany, in.tally.Renamed), nil
		}
		target, err := c.single(in, status.Renamed, renamedRe)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(l.RenameOne, target), nil

	case ModifiedOnly:
		if in.tally.Modified != 1 {
			return fmt.Sprintf(l.UpdateMany, in.tally.Modified), nil
		}
		path, err := c.single(in, status.Modified, modifiedRe)
		if err != nil {
			return "", err
		}
		return modifiedSubject(l, path), nil
	}

	return fmt.Sprintf(l.UpdateMany, in.tally.Total()), nil
}

// plural is the count template for shape, used when singular extraction
// fails in lenient mode.
func (c *Classifier) plural(shape Shape, t status.Tally) string {

	l := c.locale

	switch shape {
	case AddedOnly:
		return fmt.Sprintf(l.AddMany, t.Added)
	case DeletedOnly:
		return fmt.Sprintf(l.RemoveMany, t.Deleted)
	case RenamedOnly:
		return fmt.Sprintf(l.RenameMany, t.Renamed)
	}

	return fmt.Sprintf(l.UpdateMany, t.Total())
}

// single returns the path of the only entry of kind k. For renames it is the
// target; the source is discarded.
func (c *Classifier) single(in input, k status.Kind, re *regexp.Regexp) (string, error) {

	if c.structured {
		for _, r := range in.records {
			if r.Kind != k {
				continue
			}
			if k == status.Renamed {
				return r.RenameTarget, nil
			}
			return r.Path, nil
		}
		return "", &ExtractionError{Kind: k, Input: in.filtered}
	}

	m := re.FindStringSubmatch(in.filtered)
	if m == nil {
		return "", &ExtractionError{Kind: k, Input: in.filtered}
	}

	return m[len(m)-1], nil
}

// modifiedSubject picks a message for a single modified file, first match
// wins.
func modifiedSubject(l Locale, path string) string {

	switch {
	case strings.HasSuffix(path, ".css"):
		return l.UpdateStyles
	case strings.HasSuffix(path, ".js"):
		return l.UpdateJavaScript
	case strings.Contains(path, "test") || strings.Contains(path, "spec"):
		return l.UpdateTests
	case strings.Contains(path, "README") || strings.HasSuffix(path, ".md"):
		return l.UpdateDocs
	}

	return fmt.Sprintf(l.ModifyOne, path)
}
