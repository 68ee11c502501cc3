// Package resolve turns topics, words and place names into formatted
// replies by querying one external knowledge provider each. Every resolver
// shares the same failure contract: the only expected error is ErrNotFound,
// regardless of whether content is missing or the provider is unreachable.
package resolve

import "errors"

// ErrNotFound is the single failure outcome of every resolver.
var ErrNotFound = errors.New("resolve: content not found")
