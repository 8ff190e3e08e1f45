// Package supabase is a minimal read client for the Supabase PostgREST API.
//
// Requests go through hashicorp/go-retryablehttp, so transient failures and
// 5xx responses are retried with backoff up to Config.RetryMax times. The
// project API key is sent both as the apikey header and as a bearer token.
//
//	client, err := supabase.New(cfg.Supabase, supabase.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//
//	var rows []Contributor
//	err = client.Select(ctx, "contributors",
//	    url.Values{"select": {"*"}, "order": {"contributions.desc"}}, &rows)
//
// Non-2xx responses fail with ErrUnexpectedStatus, transport failures with
// ErrRequestFailed and malformed bodies with ErrDecodeFailed.
package supabase
