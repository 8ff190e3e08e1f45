// Package binder turns HTTP request data into typed structs for handler.Wrap.
//
// JSON binds a strict JSON request body; Path binds router path parameters
// through an extractor such as chi.URLParam. Binders wrap one of the package
// sentinel errors so callers can map failures with errors.Is:
//
//	if errors.Is(err, binder.ErrFailedToParseJSON) {
//	    // 400
//	}
//
// ErrBinderNotApplicable is returned when a binder has nothing to do for the
// request; handler.Wrap skips such binders.
package binder
