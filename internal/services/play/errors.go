package play

// PlayError is a custom error type for live play errors
type PlayError string

// Error implements the error interface
func (e PlayError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound         PlayError = "session not found"
	ErrPlayerNotFound          PlayError = "player not found"
	ErrQuestionAlreadyAnswered PlayError = "question already answered"
	ErrAlreadyAttempted        PlayError = "player already attempted this question"
	ErrInvalidWager            PlayError = "invalid wager"
	ErrOutOfRange              PlayError = "no question at that position"
	ErrEmptyName               PlayError = "player name cannot be empty"
	ErrNilConfig               PlayError = "config cannot be nil"
	ErrNilGame                 PlayError = "game cannot be nil"
	ErrNilBoardService         PlayError = "board service cannot be nil"
	ErrNilUUIDGenerator        PlayError = "UUID generator cannot be nil"
)
