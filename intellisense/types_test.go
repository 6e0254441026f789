package intellisense

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestResolver() *Resolver {
	registry := NewRegistry()
	core := registry.ensureModule("core")
	core.classesByName["Entity"] = &Class{Name: "Entity"}
	query := registry.ensureModule("query")
	query.classesByName["EntityQuery"] = &Class{Name: "EntityQuery"}
	// Entity also declared later; the first module wins
	query.classesByName["Entity"] = &Class{Name: "Entity"}
	return NewResolver(registry, "breeze")
}

func TestResolver_Resolve(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name string
		raw  string
		want TypeRef
	}{
		{"known class", "Entity", TypeRef{Name: "breeze.core.Entity"}},
		{"first module wins", "Entity", TypeRef{Name: "breeze.core.Entity"}},
		{"other module", "EntityQuery", TypeRef{Name: "breeze.query.EntityQuery"}},
		{"primitive untouched", "String", TypeRef{Name: "String"}},
		{"trimmed", "  Boolean ", TypeRef{Name: "Boolean"}},
		{"array of class", "Array of Entity", TypeRef{Name: "Array", ElementType: "breeze.core.Entity"}},
		{"array of primitive", "Array of String", TypeRef{Name: "Array", ElementType: "String"}},
		{"union verbatim", "Entity|Array of Entity", TypeRef{Name: "Entity|Array of Entity"}},
		{"union trimmed", " String | Number ", TypeRef{Name: "String | Number"}},
		{"only first array token removed", "Array of Array of String", TypeRef{Name: "Array", ElementType: "Array of String"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Resolve(tt.raw)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_ResolveEmpty(t *testing.T) {
	r := newTestResolver()
	got, ok := r.Resolve("")
	assert.False(t, ok)
	assert.Equal(t, TypeRef{}, got)
}

func TestTypeRef_String(t *testing.T) {
	assert.Equal(t, "breeze.core.Entity", TypeRef{Name: "breeze.core.Entity"}.String())
	assert.Equal(t, "Array of String", TypeRef{Name: "Array", ElementType: "String"}.String())
	assert.True(t, TypeRef{Name: "Array", ElementType: "String"}.IsArray())
	assert.False(t, TypeRef{Name: "String"}.IsArray())
}

func TestRegistry_ModuleDefining(t *testing.T) {
	registry := NewRegistry()
	registry.ensureModule("a")
	b := registry.ensureModule("b")
	b.classesByName["Thing"] = &Class{Name: "Thing"}
	assert.Same(t, b, registry.ensureModule("b"))

	m, ok := registry.ModuleDefining("Thing")
	assert.True(t, ok)
	assert.Equal(t, "b", m.Name)

	_, ok = registry.ModuleDefining("Missing")
	assert.False(t, ok)

	c, ok := registry.Class("b", "Thing")
	assert.True(t, ok)
	assert.Equal(t, "Thing", c.Name)
	_, ok = registry.Class("zzz", "Thing")
	assert.False(t, ok)

	assert.Len(t, registry.Modules(), 2)
	assert.Nil(t, registry.Module("zzz"))
}
