package llm

import "context"

// Generator is a minimal text-generation interface to allow substituting a
// fake in tests.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
