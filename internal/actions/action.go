package actions

import "context"

// Action is the abstract behaviour fired by an ActionExecutor on a
// matching transition. HttpCall is the only production implementation;
// tests use fakes satisfying this interface, mirroring the original
// Rust trait (original_source/src/actions.rs's `Action` trait).
type Action interface {
	Execute(ctx context.Context) error
}
