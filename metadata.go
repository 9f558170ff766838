package blaskontrol

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// Identity is the key under which a service is registered and later
// resolved. Any comparable value works: a string, a pointer, a small
// struct or a ServiceKey token. Like any map key, a non-comparable
// identity panics at registration.
type Identity any

// ServiceKey is an opaque identity token. Two keys minted with the same
// name are still distinct identities, so packages can expose keys without
// risking collisions on the label.
type ServiceKey struct {
	name string
	id   uuid.UUID
}

// NewServiceKey mints a unique identity token labeled name. The label
// shows up in errors and trace output.
func NewServiceKey(name string) ServiceKey {
	return ServiceKey{name: name, id: uuid.New()}
}

func (k ServiceKey) String() string {
	return k.name
}

// metadata is the record stamped on an identity the first time the family
// sees it. The id and name never change once stamped. The scope changes
// only when a child registration claims an identity first seen through
// Mock.
type metadata struct {
	scope Scope
	id    string
	name  string
}

// identityName derives the human-readable name used in errors and traces.
func identityName(identity Identity) string {
	switch v := identity.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%T", identity)
	}
}

// stamp attaches a metadata record to identity, reusing the existing
// record when one is present. The caller must hold the family write lock.
func (f *familyState) stamp(identity Identity, scope Scope) *metadata {
	if md, ok := f.meta[identity]; ok {
		return md
	}
	name := identityName(identity)
	f.counter++
	md := &metadata{
		scope: scope,
		id:    name + "#" + strconv.FormatUint(f.counter, 10),
		name:  name,
	}
	f.meta[identity] = md
	return md
}

// lookup returns the metadata stamped on identity, if any. The caller
// must hold the family lock.
func (f *familyState) lookup(identity Identity) (*metadata, bool) {
	md, ok := f.meta[identity]
	return md, ok
}
