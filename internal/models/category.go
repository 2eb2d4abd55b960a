package models

const (
	categoryKeyName      = "name"
	categoryKeyQuestions = "questions"
)

// Category is a column on the board. Question order is display order.
type Category struct {
	// Name is the column heading
	Name string `json:"name" validate:"required"`

	// Questions are listed top to bottom
	Questions []*Question `json:"questions" validate:"dive,required"`
}

// ToDocument maps the category to its document form. A nil question list is
// stored as null so it reads back as nil.
func (c *Category) ToDocument() Document {
	doc := Document{
		categoryKeyName:      c.Name,
		categoryKeyQuestions: nil,
	}
	if c.Questions != nil {
		questions := make([]interface{}, 0, len(c.Questions))
		for _, q := range c.Questions {
			questions = append(questions, q.ToDocument())
		}
		doc[categoryKeyQuestions] = questions
	}
	return doc
}

// CategoryFromDocument reads a category from its document form.
// A missing or null question list decodes as a nil list.
func CategoryFromDocument(doc Document) (*Category, error) {
	const entity = "category"

	name, err := requiredString(entity, doc, categoryKeyName)
	if err != nil {
		return nil, err
	}
	docs, err := optionalDocumentList(entity, doc, categoryKeyQuestions)
	if err != nil {
		return nil, err
	}

	var questions []*Question
	if docs != nil {
		questions = make([]*Question, 0, len(docs))
	}
	for _, d := range docs {
		q, err := QuestionFromDocument(d)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}

	return &Category{
		Name:      name,
		Questions: questions,
	}, nil
}
