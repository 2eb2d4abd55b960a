package game

import (
	"sort"
	"strings"

	"github.com/KirkDiggler/jeopardy/internal/models"
)

// matchesQuery reports whether any text on the board contains the query,
// ignoring case
func matchesQuery(g *models.Game, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	contains := func(s string) bool {
		return strings.Contains(strings.ToLower(s), q)
	}

	if contains(g.Title) {
		return true
	}
	for _, c := range g.Categories {
		if contains(c.Name) {
			return true
		}
		for _, question := range c.Questions {
			if contains(question.Text) || contains(question.Answer) {
				return true
			}
		}
	}
	if f := g.FinalJeopardy; f != nil {
		return contains(f.Category) || contains(f.Question) || contains(f.Answer)
	}
	return false
}

func filterGames(games []*models.Game, query string) []*models.Game {
	matched := make([]*models.Game, 0, len(games))
	for _, g := range games {
		if matchesQuery(g, query) {
			matched = append(matched, g)
		}
	}
	return matched
}

// sortByUpdatedDesc orders games most recently updated first, ties by ID
func sortByUpdatedDesc(games []*models.Game) {
	sort.SliceStable(games, func(i, j int) bool {
		if !games[i].UpdatedAt.Equal(games[j].UpdatedAt) {
			return games[i].UpdatedAt.After(games[j].UpdatedAt)
		}
		return games[i].ID < games[j].ID
	})
}
