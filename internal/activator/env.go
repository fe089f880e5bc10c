package activator

// Resolver supplies object and group lookup from the scene during
// compilation. Resolution failures must surface here; a compiled graph never
// performs name lookups at evaluation time.
type Resolver interface {
	// ResolveObjects expands an object or group name to the ordered set of
	// authored object names it denotes. Unknown names return
	// *errs.UnresolvedReferenceError.
	ResolveObjects(nameOrGroup string) ([]string, error)
}

// Namespace is the single process-wide host namespace. Claim reserves a host
// name, failing on collision.
type Namespace interface {
	Claim(hostName string) error
}

// Env bundles the scene collaborators a compile step needs.
type Env struct {
	Resolver  Resolver
	Namespace Namespace
}
