package session

import "github.com/abhisek/quizgen/internal/quiz"

// questionsReadyMsg is sent when question generation finishes.
type questionsReadyMsg struct {
	Questions []quiz.Question
	Err       error
}
