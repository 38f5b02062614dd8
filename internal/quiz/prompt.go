package quiz

import (
	"fmt"
	"strings"
)

// DefaultQuestionCount is the number of questions requested per topic.
const DefaultQuestionCount = 10

const systemPrompt = `You write multiple-choice quiz questions for students.
Answer with JSON only. Never wrap the JSON in markdown or add commentary.`

// BuildPrompt returns the instruction asking for count questions on a
// chapter of a subject. A non-positive count means DefaultQuestionCount.
func BuildPrompt(subject, chapter string, count int) string {
	if count <= 0 {
		count = DefaultQuestionCount
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generate multiple-choice questions for the chapter %q in %s.\n\n", chapter, subject)
	b.WriteString("Your response MUST be a single, valid JSON object. Do not include any other text or markdown.\n\n")
	fmt.Fprintf(&b, "The JSON object should have a single key \"questions\", which is an array of %d question objects. ", count)
	b.WriteString(`Each question object must have these keys: "question" (string), `)
	b.WriteString(`"options" (array of objects with "label" and "option"), `)
	b.WriteString(`"correctAnswers" (array of strings holding the labels of the correct options), `)
	b.WriteString(`and "explanation" (string).`)
	return b.String()
}
