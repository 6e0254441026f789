package intellisense

import "strings"

const (
	unionMarker  = "|"
	arrayOfToken = "Array of"
	arrayType    = "Array"
)

// TypeRef is a resolved type expression.
// ElementType is set only for "Array of X" expressions, where Name is "Array".
type TypeRef struct {
	Name        string `json:"type"`
	ElementType string `json:"elementType,omitempty"`
}

// IsArray reports whether the type is an array of ElementType
func (t TypeRef) IsArray() bool {
	return t.ElementType != ""
}

// String renders the type the way it was documented, with qualified names
func (t TypeRef) String() string {
	if t.IsArray() {
		return arrayOfToken + " " + t.ElementType
	}
	return t.Name
}

// Resolver turns documented type expressions into TypeRefs, qualifying class
// names against a registry.
type Resolver struct {
	registry  *Registry
	namespace string
}

// NewResolver creates a resolver qualifying names as "<namespace>.<module>.<class>"
func NewResolver(registry *Registry, namespace string) *Resolver {
	return &Resolver{registry: registry, namespace: namespace}
}

// Resolve parses a raw type expression. ok is false when raw is empty.
//
// Union types ("Entity|Array of Entity") are passed through trimmed and
// never qualified.
func (r *Resolver) Resolve(raw string) (ref TypeRef, ok bool) {
	if raw == "" {
		return TypeRef{}, false
	}

	raw = strings.TrimSpace(raw)
	if strings.Contains(raw, unionMarker) {
		return TypeRef{Name: raw}, true
	}

	// Only the first occurrence is removed
	element := strings.Replace(raw, arrayOfToken, "", 1)
	if len(element) != len(raw) {
		return TypeRef{
			Name:        arrayType,
			ElementType: r.Qualify(strings.TrimSpace(element)),
		}, true
	}

	return TypeRef{Name: r.Qualify(raw)}, true
}

// Qualify rewrites a bare class name to "<namespace>.<module>.<class>" using the
// first registered module that defines it. Unknown names are returned unchanged.
func (r *Resolver) Qualify(name string) string {
	m, ok := r.registry.ModuleDefining(name)
	if !ok {
		return name
	}
	return r.namespace + "." + m.Name + "." + name
}
