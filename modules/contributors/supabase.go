package contributors

import (
	"context"
	"errors"
	"net/url"
)

// Selector is satisfied by *supabase.Client.
type Selector interface {
	Select(ctx context.Context, table string, query url.Values, dst any) error
}

// SupabaseStore reads the leaderboard through the PostgREST API.
type SupabaseStore struct {
	client Selector
	table  string
}

func NewSupabaseStore(client Selector, table string) *SupabaseStore {
	if table == "" {
		table = defaultTable
	}
	return &SupabaseStore{client: client, table: table}
}

func (s *SupabaseStore) List(ctx context.Context) ([]Contributor, error) {
	q := url.Values{
		"select": {"login,avatar_url,contributions,repositories"},
		"order":  {"contributions.desc,login.asc"},
	}

	var list []Contributor
	if err := s.client.Select(ctx, s.table, q, &list); err != nil {
		return nil, errors.Join(ErrListFailed, err)
	}
	return list, nil
}
