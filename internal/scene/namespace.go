package scene

import "fmt"

// Namespace is the single flat namespace all generated host entities live
// in. It only grows; names are never released for the life of the process.
type Namespace struct {
	claimed map[string]bool
}

// NewNamespace returns an empty namespace.
func NewNamespace() *Namespace {
	return &Namespace{claimed: make(map[string]bool)}
}

// Claim reserves hostName, failing if it is already taken.
func (n *Namespace) Claim(hostName string) error {
	if n.claimed[hostName] {
		return fmt.Errorf("host name %q already in use", hostName)
	}
	n.claimed[hostName] = true
	return nil
}

// Claimed reports whether hostName has been reserved.
func (n *Namespace) Claimed(hostName string) bool {
	return n.claimed[hostName]
}
