// Package orchestrator runs a fixed-size batch of concurrent image
// generations and tracks the lifecycle of each slot independently.
//
// A Batch owns N slots. Start launches one goroutine per slot; each slot
// moves from pending to done or error on its own, and a failed slot never
// disturbs its neighbors. A terminal slot can be sent back through the
// generator with Regenerate, which is rejected while the slot is still
// pending. AwaitAll blocks until every slot is terminal, observing
// regenerations that happen while it waits.
package orchestrator
