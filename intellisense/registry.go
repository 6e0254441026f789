package intellisense

// Registry indexes modules and their classes by name.
// It is built once per run by the class registration phase and is read-only afterwards.
type Registry struct {
	modules []*Module
	byName  map[string]*Module
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Module)}
}

// Module returns the module with the given name, or nil
func (r *Registry) Module(name string) *Module {
	return r.byName[name]
}

// Modules returns modules in registration order
func (r *Registry) Modules() []*Module {
	return r.modules
}

// ensureModule returns the named module, creating it on first use
func (r *Registry) ensureModule(name string) *Module {
	if m, ok := r.byName[name]; ok {
		return m
	}
	m := &Module{Name: name, classesByName: make(map[string]*Class)}
	r.byName[name] = m
	r.modules = append(r.modules, m)
	return m
}

// Class looks up a class by module and class name
func (r *Registry) Class(moduleName, className string) (*Class, bool) {
	m := r.byName[moduleName]
	if m == nil {
		return nil, false
	}
	c, ok := m.classesByName[className]
	return c, ok
}

// ModuleDefining returns the first registered module that has a class with the given name
func (r *Registry) ModuleDefining(className string) (*Module, bool) {
	for _, m := range r.modules {
		if _, ok := m.classesByName[className]; ok {
			return m, true
		}
	}
	return nil, false
}
