package quiz

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoQuestions is returned when the analysis payload contains an empty
// question list. An empty quiz is a failure, never a valid session state.
var ErrNoQuestions = errors.New("analysis returned no questions")

// MalformedQuestionError describes a payload item that fails validation
// for its declared type.
type MalformedQuestionError struct {
	Index  int    // zero-based position in the payload
	ID     int    // service-assigned ID, 0 if missing
	Reason string // human-readable description of the failure
}

func (e *MalformedQuestionError) Error() string {
	return fmt.Sprintf("question %d (id=%d): %s", e.Index, e.ID, e.Reason)
}

// Payload mirrors one question object on the wire. Field names match the
// analysis service: "question" is the prompt and "pdfRef" the source
// locator. Answer is raw because its JSON type depends on "type"
// (number for choice, string for short, absent for essay).
type Payload struct {
	ID          int             `json:"id"`
	Type        string          `json:"type"`
	Question    string          `json:"question"`
	Options     []string        `json:"options,omitempty"`
	Answer      json.RawMessage `json:"answer,omitempty"`
	Explanation string          `json:"explanation"`
	PDFRef      string          `json:"pdfRef,omitempty"`
}

// ParseQuiz validates and converts a payload question list. It fails on
// the first malformed item; a partially valid quiz is never returned.
func ParseQuiz(items []Payload) (Quiz, error) {
	if len(items) == 0 {
		return nil, ErrNoQuestions
	}

	qs := make(Quiz, 0, len(items))
	for i, item := range items {
		q, err := ParseQuestion(i, item)
		if err != nil {
			return nil, err
		}
		qs = append(qs, q)
	}
	return qs, nil
}

// ParseQuestion validates a single payload item and builds the matching
// variant. index is the item's position in the payload, used in errors.
func ParseQuestion(index int, item Payload) (Question, error) {
	fail := func(reason string) error {
		return &MalformedQuestionError{Index: index, ID: item.ID, Reason: reason}
	}

	if item.ID <= 0 {
		return nil, fail("missing or non-positive id")
	}
	if item.Question == "" {
		return nil, fail("missing question text")
	}

	meta := Meta{
		ID:          item.ID,
		Prompt:      item.Question,
		Explanation: item.Explanation,
		Reference:   item.PDFRef,
	}

	switch Type(item.Type) {
	case TypeChoice:
		if len(item.Options) == 0 {
			return nil, fail("choice question has no options")
		}
		idx, err := decodeChoiceAnswer(item.Answer)
		if err != nil {
			return nil, fail(err.Error())
		}
		if idx < 0 || idx >= len(item.Options) {
			return nil, fail(fmt.Sprintf("answer index %d out of range [0,%d)", idx, len(item.Options)))
		}
		return ChoiceQuestion{Meta: meta, Options: item.Options, Answer: idx}, nil

	case TypeShort:
		var answer string
		if len(item.Answer) == 0 {
			return nil, fail("short question has no answer")
		}
		if err := json.Unmarshal(item.Answer, &answer); err != nil {
			return nil, fail("short answer is not a string")
		}
		if answer == "" {
			return nil, fail("short question has an empty answer")
		}
		return ShortQuestion{Meta: meta, Answer: answer}, nil

	case TypeEssay:
		// No answer key. An answer field, if present, is ignored.
		return EssayQuestion{Meta: meta}, nil

	default:
		return nil, fail(fmt.Sprintf("unknown question type %q", item.Type))
	}
}

// PayloadFrom converts a question back to its wire shape, e.g. for
// printing a generated quiz.
func PayloadFrom(q Question) Payload {
	m := q.Common()
	p := Payload{
		ID:          m.ID,
		Type:        string(q.Type()),
		Question:    m.Prompt,
		Explanation: m.Explanation,
		PDFRef:      m.Reference,
	}

	switch v := q.(type) {
	case ChoiceQuestion:
		p.Options = v.Options
		p.Answer, _ = json.Marshal(v.Answer)
	case ShortQuestion:
		p.Answer, _ = json.Marshal(v.Answer)
	}

	return p
}

func decodeChoiceAnswer(raw json.RawMessage) (int, error) {
	if len(raw) == 0 {
		return 0, errors.New("choice question has no answer")
	}
	var idx int
	if err := json.Unmarshal(raw, &idx); err != nil {
		return 0, errors.New("choice answer is not an integer index")
	}
	return idx, nil
}
