package models

const (
	finalRoundKeyCategory = "category"
	finalRoundKeyQuestion = "question"
	finalRoundKeyAnswer   = "answer"
)

// FinalRound is the optional closing question of a game
type FinalRound struct {
	Category string `json:"category" validate:"required"`
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

// ToDocument maps the final round to its document form
func (f *FinalRound) ToDocument() Document {
	return Document{
		finalRoundKeyCategory: f.Category,
		finalRoundKeyQuestion: f.Question,
		finalRoundKeyAnswer:   f.Answer,
	}
}

// FinalRoundFromDocument reads a final round from its document form
func FinalRoundFromDocument(doc Document) (*FinalRound, error) {
	const entity = "final round"

	category, err := requiredString(entity, doc, finalRoundKeyCategory)
	if err != nil {
		return nil, err
	}
	question, err := requiredString(entity, doc, finalRoundKeyQuestion)
	if err != nil {
		return nil, err
	}
	answer, err := requiredString(entity, doc, finalRoundKeyAnswer)
	if err != nil {
		return nil, err
	}

	return &FinalRound{
		Category: category,
		Question: question,
		Answer:   answer,
	}, nil
}
