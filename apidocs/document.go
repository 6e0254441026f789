// Package apidocs reads the data.json document written by yuidoc.
//
// Only the records the intellisense generator consumes are modeled: classes
// and classitems. Both may be encoded as arrays or as objects keyed by name;
// document order is preserved either way because module registration order
// decides type qualification.
package apidocs

// Document is a parsed apidocs dump
type Document struct {
	Classes    []RawClass
	ClassItems []RawClassItem
}

// RawClass is one documented class
type RawClass struct {
	Name        string `json:"name" yaml:"name"`
	Module      string `json:"module" yaml:"module"`
	Description string `json:"description" yaml:"description"`
	Static      Flag   `json:"static" yaml:"static"`
}

// RawClassItem is one documented member before it is attached to its class.
type RawClassItem struct {
	Name   string `json:"name" yaml:"name"`
	Module string `json:"module" yaml:"module"`
	Class  string `json:"class" yaml:"class"`

	// ItemType is the documented discriminator: property, method or event
	ItemType string `json:"itemtype" yaml:"itemtype"`
	// ItemTypeCamel is the camel-case spelling some tooling reads for events
	ItemTypeCamel string `json:"itemType,omitempty" yaml:"itemType,omitempty"`

	Static      Flag       `json:"static" yaml:"static"`
	Type        string     `json:"type" yaml:"type"`
	Description string     `json:"description" yaml:"description"`
	Params      []RawParam `json:"params,omitempty" yaml:"params,omitempty"`
	Return      *RawReturn `json:"return,omitempty" yaml:"return,omitempty"`
}

// RawParam is one method parameter
type RawParam struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Type        string `json:"type" yaml:"type"`
	Optional    Flag   `json:"optional" yaml:"optional"`
	OptDefault  string `json:"optdefault,omitempty" yaml:"optdefault,omitempty"`
	Multiple    Flag   `json:"multiple" yaml:"multiple"`
}

// RawReturn describes a method's return value
type RawReturn struct {
	Description string `json:"description" yaml:"description"`
	Type        string `json:"type" yaml:"type"`
}
