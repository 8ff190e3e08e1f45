package contributors

import "context"

// Contributor is one row of the contributors leaderboard.
type Contributor struct {
	Login         string   `json:"login" db:"login"`
	AvatarURL     string   `json:"avatar_url" db:"avatar_url"`
	Contributions int      `json:"contributions" db:"contributions"`
	Repositories  []string `json:"repositories" db:"repositories"`
}

// Store lists contributors ordered by contributions, highest first.
type Store interface {
	List(ctx context.Context) ([]Contributor, error)
}
