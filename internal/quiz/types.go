package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
)

// NotAnswered is the userAnswer reported for a question with no submitted label.
const NotAnswered = "Not answered"

// Option is one labelled choice of a multiple-choice question.
type Option struct {
	Label  string `json:"label"`
	Option string `json:"option"`
}

// Question is a multiple-choice question as generated by the model or
// submitted back for grading.
//
// The exported fields are a lenient typed view: a member of an unexpected
// JSON type leaves its field unset instead of failing the decode. A decoded
// Question re-encodes exactly as it was received, unknown members and odd
// types included. Questions built in code encode from the typed fields.
type Question struct {
	Question       *string  `json:"question,omitzero"`
	Options        []Option `json:"options,omitzero"`
	CorrectAnswers []string `json:"correctAnswers,omitzero"`
	Explanation    *string  `json:"explanation,omitzero"`

	raw    json.RawMessage            // whole value as received
	fields map[string]json.RawMessage // members, when raw is an object
}

// UnmarshalJSON accepts any JSON value. Non-objects decode to a question
// with no fields.
func (q *Question) UnmarshalJSON(data []byte) error {
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return err
	}
	*q = Question{raw: buf.Bytes()}
	if len(q.raw) == 0 || q.raw[0] != '{' {
		return nil
	}
	if err := json.Unmarshal(q.raw, &q.fields); err != nil {
		return err
	}

	if s, ok := decodeString(q.fields["question"]); ok {
		q.Question = &s
	}
	if s, ok := decodeString(q.fields["explanation"]); ok {
		q.Explanation = &s
	}
	q.Options = decodeOptions(q.fields["options"])
	q.CorrectAnswers = decodeLabels(q.fields["correctAnswers"])
	return nil
}

// MarshalJSON writes a decoded question verbatim.
func (q Question) MarshalJSON() ([]byte, error) {
	if q.raw != nil {
		return slices.Clone(q.raw), nil
	}
	type plain Question
	return json.Marshal(plain(q))
}

// member returns the named member as JSON, or nil when it is absent.
func (q Question) member(name string) json.RawMessage {
	if q.raw != nil {
		return slices.Clone(q.fields[name])
	}
	var v any
	switch name {
	case "question":
		if q.Question != nil {
			v = *q.Question
		}
	case "correctAnswers":
		if q.CorrectAnswers != nil {
			v = q.CorrectAnswers
		}
	case "explanation":
		if q.Explanation != nil {
			v = *q.Explanation
		}
	}
	if v == nil {
		return nil
	}
	b, _ := json.Marshal(v)
	return b
}

func decodeString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// scalarText renders a JSON value for display: strings unquoted, anything
// else as its literal text.
func scalarText(raw json.RawMessage) string {
	if s, ok := decodeString(raw); ok {
		return s
	}
	if bytes.Equal(raw, []byte("null")) {
		return ""
	}
	return string(raw)
}

// decodeOptions reads options for display. Object entries give their label
// and option text; any other entry is taken as unlabelled option text.
func decodeOptions(raw json.RawMessage) []Option {
	var items []json.RawMessage
	if len(raw) == 0 || raw[0] != '[' || json.Unmarshal(raw, &items) != nil {
		return nil
	}
	opts := make([]Option, 0, len(items))
	for _, item := range items {
		var obj map[string]json.RawMessage
		if len(item) > 0 && item[0] == '{' && json.Unmarshal(item, &obj) == nil {
			opts = append(opts, Option{Label: scalarText(obj["label"]), Option: scalarText(obj["option"])})
			continue
		}
		opts = append(opts, Option{Option: scalarText(item)})
	}
	return opts
}

// decodeLabels reads correctAnswers. Only string entries can ever match a
// submitted label; a value that is not an array counts as absent.
func decodeLabels(raw json.RawMessage) []string {
	var items []json.RawMessage
	if len(raw) == 0 || raw[0] != '[' || json.Unmarshal(raw, &items) != nil {
		return nil
	}
	labels := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := decodeString(item); ok {
			labels = append(labels, s)
		}
	}
	return labels
}

// Answers maps a 1-based question position ("1", "2", ...) to the
// submitted answer. Values are normally label strings; decoded JSON keeps
// other types as they were sent (numbers as json.Number), and only a string
// can match a correct label.
type Answers map[string]any

// UnmarshalJSON decodes a JSON object, keeping numbers exact.
func (a *Answers) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return err
	}
	*a = m
	return nil
}

// answered reports whether v counts as a submission. Empty strings, zero,
// false and null count as no answer.
func answered(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case json.Number:
		f, err := v.Float64()
		return err != nil || f != 0
	case float64:
		return v != 0
	case int:
		return v != 0
	}
	return true
}

// GradingResult is the outcome for one question. question, correctAnswers
// and explanation are copied from the input exactly as received; absent
// members stay absent.
type GradingResult struct {
	Question       json.RawMessage `json:"question,omitempty"`
	CorrectAnswers json.RawMessage `json:"correctAnswers,omitempty"`
	UserAnswer     any             `json:"userAnswer"`
	IsCorrect      bool            `json:"isCorrect"`
	Explanation    json.RawMessage `json:"explanation,omitempty"`
}

// QuestionText returns the question for display.
func (r GradingResult) QuestionText() string {
	return scalarText(r.Question)
}

// ExplanationText returns the explanation for display.
func (r GradingResult) ExplanationText() string {
	return scalarText(r.Explanation)
}

// CorrectLabels returns the correct labels for display.
func (r GradingResult) CorrectLabels() []string {
	var items []json.RawMessage
	if len(r.CorrectAnswers) == 0 || r.CorrectAnswers[0] != '[' || json.Unmarshal(r.CorrectAnswers, &items) != nil {
		if len(r.CorrectAnswers) == 0 {
			return nil
		}
		return []string{scalarText(r.CorrectAnswers)}
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = scalarText(item)
	}
	return labels
}

// UserAnswerText returns the submitted answer for display.
func (r GradingResult) UserAnswerText() string {
	switch v := r.UserAnswer.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	}
	b, err := json.Marshal(r.UserAnswer)
	if err != nil {
		return fmt.Sprint(r.UserAnswer)
	}
	return string(b)
}

// Summary totals a graded quiz.
type Summary struct {
	Total    int     `json:"total"`
	Answered int     `json:"answered"`
	Correct  int     `json:"correct"`
	Score    float64 `json:"score"` // percentage, two decimals
}
