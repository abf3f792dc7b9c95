package ports

// ChangeTracker declares build inputs to the host build system.
type ChangeTracker interface {
	// Declare emits one watch directive per filesystem entry reachable from
	// each root. Unreadable entries are skipped; declaring dependencies must
	// never fail the build.
	Declare(roots []string)
}
