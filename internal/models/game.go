package models

import (
	"time"
)

// DefaultGameTitle is the title given to a freshly constructed game
const DefaultGameTitle = "New Jeopardy Game"

const (
	gameKeyTitle         = "title"
	gameKeyTeacherID     = "teacherId"
	gameKeyCategories    = "categories"
	gameKeyFinalJeopardy = "finalJeopardy"
	gameKeyCreatedAt     = "createdAt"
	gameKeyUpdatedAt     = "updatedAt"
	gameKeyIsPublic      = "isPublic"
)

// Game represents a trivia board authored by a teacher
type Game struct {
	// ID is the store-assigned identifier; empty until the game is persisted
	ID string `json:"id"`

	// Title is the display name of the board
	Title string `json:"title" validate:"required"`

	// TeacherID is the owner of the game
	TeacherID string `json:"teacherId" validate:"required"`

	// Categories are the board columns in display order
	Categories []*Category `json:"categories" validate:"dive,required"`

	// FinalJeopardy is the optional closing round
	FinalJeopardy *FinalRound `json:"finalJeopardy"`

	// CreatedAt is when the game was created
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the game was last saved
	UpdatedAt time.Time `json:"updatedAt"`

	// IsPublic controls whether the game shows up in the public listing
	IsPublic bool `json:"isPublic"`
}

// NewGame returns an empty, unsaved game owned by teacherID
func NewGame(teacherID string, now time.Time) *Game {
	return &Game{
		Title:      DefaultGameTitle,
		TeacherID:  teacherID,
		Categories: []*Category{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// ToDocument maps the game to its document form. The ID is not part of the
// document; stores keep it as the record key.
func (g *Game) ToDocument() Document {
	categories := make([]interface{}, 0, len(g.Categories))
	for _, c := range g.Categories {
		categories = append(categories, c.ToDocument())
	}

	var final interface{}
	if g.FinalJeopardy != nil {
		final = g.FinalJeopardy.ToDocument()
	}

	return Document{
		gameKeyTitle:         g.Title,
		gameKeyTeacherID:     g.TeacherID,
		gameKeyCategories:    categories,
		gameKeyFinalJeopardy: final,
		gameKeyCreatedAt:     g.CreatedAt,
		gameKeyUpdatedAt:     g.UpdatedAt,
		gameKeyIsPublic:      g.IsPublic,
	}
}

// GameFromDocument reads a stored game. id is the record key the document
// was stored under.
func GameFromDocument(id string, doc Document) (*Game, error) {
	const entity = "game"

	title, err := requiredString(entity, doc, gameKeyTitle)
	if err != nil {
		return nil, err
	}
	teacherID, err := requiredString(entity, doc, gameKeyTeacherID)
	if err != nil {
		return nil, err
	}
	createdAt, err := requiredTime(entity, doc, gameKeyCreatedAt)
	if err != nil {
		return nil, err
	}
	updatedAt, err := requiredTime(entity, doc, gameKeyUpdatedAt)
	if err != nil {
		return nil, err
	}
	isPublic, err := optionalBool(entity, doc, gameKeyIsPublic)
	if err != nil {
		return nil, err
	}

	docs, err := optionalDocumentList(entity, doc, gameKeyCategories)
	if err != nil {
		return nil, err
	}
	categories := make([]*Category, 0, len(docs))
	for _, d := range docs {
		c, err := CategoryFromDocument(d)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	var final *FinalRound
	if v, ok := doc[gameKeyFinalJeopardy]; ok && v != nil {
		d, err := nestedDocument(entity, gameKeyFinalJeopardy, v)
		if err != nil {
			return nil, err
		}
		if final, err = FinalRoundFromDocument(d); err != nil {
			return nil, err
		}
	}

	return &Game{
		ID:            id,
		Title:         title,
		TeacherID:     teacherID,
		Categories:    categories,
		FinalJeopardy: final,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
		IsPublic:      isPublic,
	}, nil
}

// Clone returns a deep copy of the game
func (g *Game) Clone() *Game {
	c := *g
	c.Categories = make([]*Category, 0, len(g.Categories))
	for _, cat := range g.Categories {
		var questions []*Question
		if cat.Questions != nil {
			questions = make([]*Question, 0, len(cat.Questions))
		}
		for _, q := range cat.Questions {
			questions = append(questions, q.CopyWith())
		}
		c.Categories = append(c.Categories, &Category{Name: cat.Name, Questions: questions})
	}
	if g.FinalJeopardy != nil {
		final := *g.FinalJeopardy
		c.FinalJeopardy = &final
	}
	return &c
}

// HighestValue returns the largest point value on the board
func (g *Game) HighestValue() int {
	highest := 0
	for _, c := range g.Categories {
		for _, q := range c.Questions {
			if q.Points > highest {
				highest = q.Points
			}
		}
	}
	return highest
}

// QuestionCount returns the number of questions across all categories
func (g *Game) QuestionCount() int {
	n := 0
	for _, c := range g.Categories {
		n += len(c.Questions)
	}
	return n
}
