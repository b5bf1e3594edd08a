// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dialogue interviews the user and turns the answers into a
// completion prompt. Each Question asks for one piece of information and
// renders it as a prompt fragment; Assemble runs an ordered list of them.
package dialogue

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUntitledQuestion is returned when a question has no label to show.
	ErrUntitledQuestion = errors.New("question title cannot be empty")

	// ErrUnknownQuestion is returned by New for an unrecognised kind.
	ErrUnknownQuestion = errors.New("unknown question kind")
)

// Kind identifies a question variant.
type Kind string

const (
	KindTitle     Kind = "title"
	KindKeywords  Kind = "keywords"
	KindWordCount Kind = "word_count"
	KindExtraNote Kind = "extra_note"
)

// DefaultQuestions is the interview order used when none is configured.
var DefaultQuestions = []Kind{KindTitle, KindKeywords, KindWordCount, KindExtraNote}

// Question prompts for one answer and renders it into a prompt fragment.
// A question is filled by exactly one call to Read and is read-only afterwards.
type Question interface {
	Kind() Kind
	Title() string
	Answer() string
	Read(t *Terminal) error
	// Fragment returns the prompt text for the stored answer, or "" when
	// the answer contributes nothing.
	Fragment() string
}

// New returns an unanswered question of the given kind.
func New(kind Kind) (Question, error) {
	switch kind {
	case KindTitle:
		return &TitleQuestion{}, nil
	case KindKeywords:
		return &KeywordsQuestion{}, nil
	case KindWordCount:
		return &WordCountQuestion{}, nil
	case KindExtraNote:
		return &ExtraNoteQuestion{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownQuestion, kind)
	}
}

// ParseKinds converts configured question names to kinds, rejecting any
// name New would not accept.
func ParseKinds(names []string) ([]Kind, error) {
	kinds := make([]Kind, 0, len(names))
	for _, name := range names {
		k := Kind(strings.TrimSpace(name))
		if _, err := New(k); err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// Ask shows q's title and reads its answer. A question without a title is
// rejected before any input is consumed.
func Ask(t *Terminal, q Question) error {
	if strings.TrimSpace(q.Title()) == "" {
		return fmt.Errorf("%s: %w", q.Kind(), ErrUntitledQuestion)
	}
	return q.Read(t)
}

// answer holds the text shared by every variant.
type answer struct {
	text string
}

func (a *answer) Answer() string { return a.text }

func (a *answer) read(t *Terminal, title string) error {
	s, err := t.Ask(title)
	if err != nil {
		return err
	}
	a.text = s
	return nil
}

// TitleQuestion asks for the post title.
type TitleQuestion struct{ answer }

func (q *TitleQuestion) Kind() Kind    { return KindTitle }
func (q *TitleQuestion) Title() string { return "Post title" }

func (q *TitleQuestion) Read(t *Terminal) error { return q.read(t, q.Title()) }

func (q *TitleQuestion) Fragment() string {
	return fmt.Sprintf("Write a blog post for: %s.", q.text)
}

// KeywordsQuestion asks for optional SEO keywords.
type KeywordsQuestion struct{ answer }

func (q *KeywordsQuestion) Kind() Kind    { return KindKeywords }
func (q *KeywordsQuestion) Title() string { return "Keywords (Leave blank if none)" }

func (q *KeywordsQuestion) Read(t *Terminal) error { return q.read(t, q.Title()) }

func (q *KeywordsQuestion) Fragment() string {
	if q.text == "" {
		return ""
	}
	return fmt.Sprintf("Optimize content by using keywords %s.", q.text)
}

// WordCountQuestion asks for the target length. Only fully numeric answers
// are accepted.
type WordCountQuestion struct{ answer }

func (q *WordCountQuestion) Kind() Kind    { return KindWordCount }
func (q *WordCountQuestion) Title() string { return "Word Count" }

func (q *WordCountQuestion) Read(t *Terminal) error {
	s, err := t.AskNumeric(q.Title(), nil)
	if err != nil {
		return err
	}
	q.text = s
	return nil
}

func (q *WordCountQuestion) Fragment() string {
	return fmt.Sprintf("It should be about %s words.", q.text)
}

// ExtraNoteQuestion asks for free-form instructions.
type ExtraNoteQuestion struct{ answer }

func (q *ExtraNoteQuestion) Kind() Kind    { return KindExtraNote }
func (q *ExtraNoteQuestion) Title() string { return "Extra note" }

func (q *ExtraNoteQuestion) Read(t *Terminal) error { return q.read(t, q.Title()) }

func (q *ExtraNoteQuestion) Fragment() string {
	if q.text == "" {
		return ""
	}
	return q.text + "."
}
