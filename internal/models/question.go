package models

// Document keys for a question
const (
	questionKeyQuestion      = "question"
	questionKeyAnswer        = "answer"
	questionKeyPoints        = "points"
	questionKeyIsAnswered    = "isAnswered"
	questionKeyAnsweredBy    = "answeredBy"
	questionKeyIsDailyDouble = "isDailyDouble"
)

// Question is a single clue on the board
type Question struct {
	// Text is the clue read to the players
	Text string `json:"question" validate:"required"`

	// Answer is the expected response
	Answer string `json:"answer" validate:"required"`

	// Points is the board value of the question
	Points int `json:"points" validate:"gte=0"`

	// IsAnswered is set once the question has been played
	IsAnswered bool `json:"isAnswered"`

	// AnsweredBy is the ID of the player who answered, if any.
	// IsAnswered without a respondent is accepted (nobody got it).
	AnsweredBy *string `json:"answeredBy"`

	// IsDailyDouble marks the question for wager scoring
	IsDailyDouble bool `json:"isDailyDouble"`
}

// QuestionOption overrides a field in CopyWith
type QuestionOption func(*Question)

// WithText overrides the clue text
func WithText(text string) QuestionOption {
	return func(q *Question) { q.Text = text }
}

// WithAnswer overrides the answer text
func WithAnswer(answer string) QuestionOption {
	return func(q *Question) { q.Answer = answer }
}

// WithPoints overrides the point value
func WithPoints(points int) QuestionOption {
	return func(q *Question) { q.Points = points }
}

// WithAnswered overrides the answered flag
func WithAnswered(answered bool) QuestionOption {
	return func(q *Question) { q.IsAnswered = answered }
}

// WithAnsweredBy sets the respondent
func WithAnsweredBy(playerID string) QuestionOption {
	return func(q *Question) { q.AnsweredBy = &playerID }
}

// WithoutRespondent clears the respondent
func WithoutRespondent() QuestionOption {
	return func(q *Question) { q.AnsweredBy = nil }
}

// WithDailyDouble overrides the daily double flag
func WithDailyDouble(dailyDouble bool) QuestionOption {
	return func(q *Question) { q.IsDailyDouble = dailyDouble }
}

// CopyWith returns a new question with the given overrides applied.
// The receiver is never modified.
func (q *Question) CopyWith(opts ...QuestionOption) *Question {
	c := *q
	if q.AnsweredBy != nil {
		by := *q.AnsweredBy
		c.AnsweredBy = &by
	}
	for _, opt := range opts {
		opt(&c)
	}
	return &c
}

// ToDocument maps the question to its document form
func (q *Question) ToDocument() Document {
	var answeredBy interface{}
	if q.AnsweredBy != nil {
		answeredBy = *q.AnsweredBy
	}
	return Document{
		questionKeyQuestion:      q.Text,
		questionKeyAnswer:        q.Answer,
		questionKeyPoints:        q.Points,
		questionKeyIsAnswered:    q.IsAnswered,
		questionKeyAnsweredBy:    answeredBy,
		questionKeyIsDailyDouble: q.IsDailyDouble,
	}
}

// QuestionFromDocument reads a question from its document form
func QuestionFromDocument(doc Document) (*Question, error) {
	const entity = "question"

	text, err := requiredString(entity, doc, questionKeyQuestion)
	if err != nil {
		return nil, err
	}
	answer, err := requiredString(entity, doc, questionKeyAnswer)
	if err != nil {
		return nil, err
	}
	points, err := requiredInt(entity, doc, questionKeyPoints)
	if err != nil {
		return nil, err
	}
	answered, err := optionalBool(entity, doc, questionKeyIsAnswered)
	if err != nil {
		return nil, err
	}
	answeredBy, err := optionalStringPtr(entity, doc, questionKeyAnsweredBy)
	if err != nil {
		return nil, err
	}
	dailyDouble, err := optionalBool(entity, doc, questionKeyIsDailyDouble)
	if err != nil {
		return nil, err
	}

	return &Question{
		Text:          text,
		Answer:        answer,
		Points:        points,
		IsAnswered:    answered,
		AnsweredBy:    answeredBy,
		IsDailyDouble: dailyDouble,
	}, nil
}
