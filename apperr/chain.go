package apperr

import (
	stderrors "errors"
	"fmt"
)

// maxChainDepth bounds cause-chain traversal so a malformed self-referencing
// chain can never loop forever.
const maxChainDepth = 64

// Link is one element of a cause chain: the failure's concrete type and its
// message, ordered outermost to root.
type Link struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Chain walks err's cause chain and returns one Link per failure, outermost
// first. Traversal stops at the root cause, at a self-referencing link, or
// at maxChainDepth, whichever comes first.
func Chain(err error) []Link {
	var links []Link
	for i := 0; err != nil && i < maxChainDepth; i++ {
		links = append(links, Link{
			Type:    fmt.Sprintf("%T", err),
			Message: err.Error(),
		})
		next := stderrors.Unwrap(err)
		if next == err {
			break
		}
		err = next
	}
	return links
}

// Root returns the innermost failure of err's chain, or err itself when it
// has no cause.
func Root(err error) error {
	for i := 0; err != nil && i < maxChainDepth; i++ {
		next := stderrors.Unwrap(err)
		if next == nil || next == err {
			return err
		}
		err = next
	}
	return err
}
