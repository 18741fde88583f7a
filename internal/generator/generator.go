package generator

import "context"

// Generator produces assistant text for one user turn.
//
// The contract is deliberately narrow (single text in, single text out)
// so the canned mock and a real inference client are interchangeable
// implementations.
type Generator interface {
	Generate(ctx context.Context, userText string) (string, error)
}
