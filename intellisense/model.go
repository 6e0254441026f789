package intellisense

import (
	"time"

	"github.com/fdmota/breeze.js/apidocs"
)

// Model is the complete API description handed to the template
type Model struct {
	// Namespace is the prefix used for qualified type names
	Namespace   string    `json:"namespace"`
	Modules     []*Module `json:"modules"`
	GeneratedAt time.Time `json:"generatedAt"`

	// UnassignedItems reference a known module but a class it does not register
	UnassignedItems []apidocs.RawClassItem `json:"unassignedItems,omitempty"`
	// ItemsForUnknownModule reference a module no class declared
	ItemsForUnknownModule []apidocs.RawClassItem `json:"itemsForUnknownModule,omitempty"`
	// DuplicateClasses lists class names registered more than once in a module
	DuplicateClasses []DuplicateClass `json:"duplicateClasses,omitempty"`
}

// DuplicateClass records a class name seen twice in one module.
// The later record wins name lookups; both stay in the module's class list.
type DuplicateClass struct {
	Module string `json:"module"`
	Name   string `json:"name"`
}

// Module is a named group of classes
type Module struct {
	Name    string   `json:"name"`
	Classes []*Class `json:"classes"`

	classesByName map[string]*Class
}

// Class is a documented class with its members split by kind and staticness
type Class struct {
	Name             string         `json:"name"`
	Description      *MultilineText `json:"description,omitempty"`
	IsStatic         bool           `json:"isStatic"`
	Properties       []Property     `json:"properties,omitempty"`
	StaticProperties []Property     `json:"staticProperties,omitempty"`
	Methods          []Method       `json:"methods,omitempty"`
	StaticMethods    []Method       `json:"staticMethods,omitempty"`
	Constructor      *Method        `json:"constructor,omitempty"`
	Events           []Event        `json:"events,omitempty"`
}

// Property is a documented field
type Property struct {
	Name        string  `json:"name"`
	Type        TypeRef `json:"type"`
	Description string  `json:"description,omitempty"`
	IsStatic    bool    `json:"isStatic"`
}

// Event has the same shape as Property
type Event Property

// Method is a documented function
type Method struct {
	Name string `json:"name"`
	// Type is copied as documented and never resolved
	Type          string         `json:"type,omitempty"`
	Description   *MultilineText `json:"description,omitempty"`
	IsStatic      bool           `json:"isStatic"`
	IsConstructor bool           `json:"isConstructor"`
	Params        []Param        `json:"params,omitempty"`
	Return        *Return        `json:"return,omitempty"`
}

// Param is a method parameter
type Param struct {
	Name string `json:"name"`
	// Optional is the attribute value written to the output; always "true"
	Optional    string  `json:"optional"`
	OptDefault  string  `json:"optdefault,omitempty"`
	Multiple    bool    `json:"multiple,omitempty"`
	Description string  `json:"description,omitempty"`
	Type        TypeRef `json:"type"`
}

// Return describes a method result
type Return struct {
	Type        TypeRef `json:"type"`
	Description string  `json:"description,omitempty"`
}

// Stats counts what a model holds
type Stats struct {
	Modules          int
	Classes          int
	Properties       int
	Methods          int
	Constructors     int
	Events           int
	Unassigned       int
	UnknownModule    int
	DuplicateClasses int
}

// Stats summarizes the model
func (m *Model) Stats() Stats {
	s := Stats{
		Modules:          len(m.Modules),
		Unassigned:       len(m.UnassignedItems),
		UnknownModule:    len(m.ItemsForUnknownModule),
		DuplicateClasses: len(m.DuplicateClasses),
	}
	for _, mod := range m.Modules {
		s.Classes += len(mod.Classes)
		for _, c := range mod.Classes {
			s.Properties += len(c.Properties) + len(c.StaticProperties)
			s.Methods += len(c.Methods) + len(c.StaticMethods)
			s.Events += len(c.Events)
			if c.Constructor != nil {
				s.Constructors++
			}
		}
	}
	return s
}
