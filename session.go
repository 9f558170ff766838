package blaskontrol

import "github.com/samber/lo"

// sessionBackup holds the references captured by Snapshot and swapped back
// by Restore.
type sessionBackup struct {
	bindings   map[string]binding
	singletons map[string]any
	resolved   map[string]any
}

// Snapshot opens a mock session on the family. It backs up the root's
// binding table, the shared singleton store and the root's resolved cache,
// then puts working copies in their place: shallow copies of the two
// tables and a fresh empty cache. Everything registered, resolved or
// mocked during the session lands in the working copies and vanishes on
// Restore. Root-only; a second Snapshot without Restore fails.
func (c *Container) Snapshot() error {
	if !c.isRoot {
		return &RootOnlyError{Op: "Snapshot"}
	}
	fam := c.family
	fam.mu.Lock()
	if fam.session == sessionSnapshotted {
		fam.mu.Unlock()
		return &AlreadySnapshottedError{}
	}
	root := fam.root
	fam.backup = &sessionBackup{
		bindings:   root.bindings,
		singletons: fam.singletons,
		resolved:   root.resolved,
	}
	root.bindings = lo.Assign(root.bindings)
	fam.singletons = lo.Assign(fam.singletons)
	root.resolved = make(map[string]any)
	fam.session = sessionSnapshotted
	fam.mu.Unlock()

	c.debugf("snapshot: session started")
	return nil
}

// Restore closes the session: it empties the shared mock overlay in place,
// swaps the backed-up binding table, singleton store and resolved cache
// back in and discards the backup. Identity metadata stamped during the
// session is not rolled back. Root-only; fails without an active session.
func (c *Container) Restore() error {
	if !c.isRoot {
		return &RootOnlyError{Op: "Restore"}
	}
	fam := c.family
	fam.mu.Lock()
	if fam.session != sessionSnapshotted {
		fam.mu.Unlock()
		return &NoActiveSessionError{Op: "Restore"}
	}
	clear(fam.mocks)
	root := fam.root
	root.bindings = fam.backup.bindings
	fam.singletons = fam.backup.singletons
	root.resolved = fam.backup.resolved
	fam.backup = nil
	fam.session = sessionNormal
	fam.mu.Unlock()

	c.debugf("restore: session ended")
	return nil
}

// ClearMocks empties the shared mock overlay while keeping the session and
// its working copies alive, so a suite can reset mocks between cases
// without paying for a full Restore and Snapshot. Root-only; requires an
// active session.
func (c *Container) ClearMocks() error {
	if !c.isRoot {
		return &RootOnlyError{Op: "ClearMocks"}
	}
	fam := c.family
	fam.mu.Lock()
	if fam.session != sessionSnapshotted {
		fam.mu.Unlock()
		return &NoActiveSessionError{Op: "ClearMocks"}
	}
	clear(fam.mocks)
	fam.mu.Unlock()

	c.debugf("session mocks cleared")
	return nil
}
