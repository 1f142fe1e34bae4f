// Package workflow implements the evaluation pipeline for Arbiter.
// It provides foundational types, prompt composition, and response
// interpretation used by the 3-node state graph
// (compose → invoke → interpret).
package workflow

import "errors"

// Sentinel errors for workflow operations.
var (
	ErrComposeFailed = errors.New("prompt composition failed")
	ErrGatewayFailed = errors.New("model gateway request failed")
	ErrStateCorrupt  = errors.New("workflow state corrupt")
)
