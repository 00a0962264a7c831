package jungle

import "time"

// Match is one game session known by id.
type Match struct {
	ID        string    `json:"id"`
	Game      *Game     `json:"-"`
	StartedAt time.Time `json:"started_at"`
}

func NewMatch(id string, game *Game, startedAt time.Time) *Match {
	return &Match{
		ID:        id,
		Game:      game,
		StartedAt: startedAt,
	}
}
