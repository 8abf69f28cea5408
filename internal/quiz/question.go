package quiz

// Type identifies how a question is answered and graded.
type Type string

const (
	// TypeChoice is a multiple-choice question answered by option index.
	TypeChoice Type = "choice"

	// TypeShort is a short free-text question matched against an answer key.
	TypeShort Type = "short"

	// TypeEssay is a long-form question graded by a completion heuristic,
	// not by content. There is no answer key.
	TypeEssay Type = "essay"
)

// Meta holds the fields common to every question variant.
type Meta struct {
	// ID is the question number assigned by the analysis service.
	// Positive, stable and unique within one quiz.
	ID int

	// Prompt is the question text shown to the learner.
	Prompt string

	// Explanation is shown during review, after grading.
	Explanation string

	// Reference is an optional locator back into the source document
	// (page number or keyword). Empty when the service omitted it.
	Reference string
}

// Question is a sealed tagged variant: exactly one of ChoiceQuestion,
// ShortQuestion or EssayQuestion. Each variant carries only the fields
// valid for its type, so an option list on an essay or an index answer
// on a short question is unrepresentable.
type Question interface {
	Type() Type
	Common() Meta

	sealed()
}

// ChoiceQuestion is answered by picking one of Options.
type ChoiceQuestion struct {
	Meta

	// Options is the ordered list of answer choices.
	Options []string

	// Answer is the index of the correct option, in [0, len(Options)).
	Answer int
}

func (q ChoiceQuestion) Type() Type   { return TypeChoice }
func (q ChoiceQuestion) Common() Meta { return q.Meta }
func (ChoiceQuestion) sealed()        {}

// ShortQuestion is answered with free text and matched against Answer
// ignoring whitespace.
type ShortQuestion struct {
	Meta

	// Answer is the expected answer text.
	Answer string
}

func (q ShortQuestion) Type() Type   { return TypeShort }
func (q ShortQuestion) Common() Meta { return q.Meta }
func (ShortQuestion) sealed()        {}

// EssayQuestion has no answer key; grading is a length heuristic.
type EssayQuestion struct {
	Meta
}

func (q EssayQuestion) Type() Type   { return TypeEssay }
func (q EssayQuestion) Common() Meta { return q.Meta }
func (EssayQuestion) sealed()        {}

// Quiz is the ordered set of questions for one session. It is immutable
// once parsed; an empty Quiz is never valid (see ParseQuiz).
type Quiz []Question

// AnswerText returns the display form of the correct answer: the option
// text for choice, the answer key for short, and empty for essay.
func AnswerText(q Question) string {
	switch q := q.(type) {
	case ChoiceQuestion:
		if q.Answer >= 0 && q.Answer < len(q.Options) {
			return q.Options[q.Answer]
		}
		return ""
	case ShortQuestion:
		return q.Answer
	default:
		return ""
	}
}
