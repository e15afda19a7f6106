package quiz

type QuestionDTO struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   int      `json:"answer"`
}

type AnswerDTO struct {
	QuestionID string `json:"question_id"`
	Selected   int    `json:"selected"`
	Correct    bool   `json:"correct"`
	Answer     int    `json:"answer"`
}
