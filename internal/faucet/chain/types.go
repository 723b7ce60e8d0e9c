package chain

// Endpoint is a resolved network target: where to submit transactions and
// where humans can inspect them.
type Endpoint struct {
	Name            string
	RPCURL          string
	ExplorerBaseURL string
}
