// Package session resolves the caller identity of an HTTP request from the
// session cookie.
//
// A Resolver reads the cookie through a CookieReader (normally a
// *cookie.Manager), hands its value to a Verifier (normally a
// *token.Codec) and returns an Identity. Resolve is total: a missing cookie, an
// unverifiable token or a nil request all produce the zero Identity, which
// reports Authenticated() == false.
//
// # Usage
//
//	codec, _ := token.New(cfg.SessionSecrets)
//	cookies, _ := cookie.New(cookie.DefaultPolicy(prod))
//	res := session.NewResolver(codec, cookies)
//
//	r := chi.NewRouter()
//	r.Use(res.Middleware)
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    id, _ := session.FromContext(r.Context())
//	    if id.Authenticated() {
//	        // id.Address
//	    }
//	}
//
// # Logger integration
//
//	logger.New(logger.WithContextExtractors(session.LoggerExtractor()))
package session
