package intellisense

import (
	"strings"

	"github.com/fdmota/breeze.js/apidocs"
)

// ItemKind discriminates class items
type ItemKind int

const (
	KindUnknown ItemKind = iota
	KindProperty
	KindMethod
	KindEvent
)

func (k ItemKind) String() string {
	switch k {
	case KindProperty:
		return "property"
	case KindMethod:
		return "method"
	case KindEvent:
		return "event"
	default:
		return "unknown"
	}
}

// EventRouting selects which discriminator field marks an event
type EventRouting string

const (
	// EventRoutingLegacy compares only the camel-case itemType field against "event".
	// yuidoc writes the lowercase field, so documented events stay unrouted.
	EventRoutingLegacy EventRouting = "legacy"
	// EventRoutingItemType also accepts itemtype == "event"
	EventRoutingItemType EventRouting = "itemtype"
)

// classifyItem maps a raw item to its kind. Properties and methods are matched
// on itemtype first; events only afterwards, per routing.
func classifyItem(item apidocs.RawClassItem, routing EventRouting) ItemKind {
	switch item.ItemType {
	case "property":
		return KindProperty
	case "method":
		return KindMethod
	}

	if item.ItemTypeCamel == "event" {
		return KindEvent
	}
	if routing == EventRoutingItemType && item.ItemType == "event" {
		return KindEvent
	}
	return KindUnknown
}

// optionalAttr is the value every param's optional attribute carries.
// The documented optional flag is not consulted; every param is emitted as optional.
const optionalAttr = "true"

// memberBuilder converts raw class items into members
type memberBuilder struct {
	resolver   *Resolver
	ctorMarker string
}

func (b *memberBuilder) resolve(raw string) TypeRef {
	ref, _ := b.resolver.Resolve(raw)
	return ref
}

func (b *memberBuilder) buildProperty(raw apidocs.RawClassItem) Property {
	return Property{
		Name:        raw.Name,
		Type:        b.resolve(raw.Type),
		Description: NormalizeSingleLine(raw.Description),
		IsStatic:    bool(raw.Static),
	}
}

func (b *memberBuilder) buildEvent(raw apidocs.RawClassItem) Event {
	return Event(b.buildProperty(raw))
}

func (b *memberBuilder) buildMethod(raw apidocs.RawClassItem) Method {
	method := Method{
		Name:          raw.Name,
		Type:          raw.Type,
		Description:   NormalizeMultiline(raw.Description),
		IsStatic:      bool(raw.Static),
		IsConstructor: strings.Contains(raw.Name, b.ctorMarker),
	}

	if raw.Params != nil {
		method.Params = make([]Param, 0, len(raw.Params))
		for _, p := range raw.Params {
			method.Params = append(method.Params, Param{
				Name:        p.Name,
				Optional:    optionalAttr,
				OptDefault:  p.OptDefault,
				Multiple:    bool(p.Multiple),
				Description: NormalizeSingleLine(p.Description),
				Type:        b.resolve(p.Type),
			})
		}
	}

	if raw.Return != nil {
		method.Return = &Return{
			Type:        b.resolve(raw.Return.Type),
			Description: NormalizeSingleLine(raw.Return.Description),
		}
	}

	return method
}

// dispatch attaches a classified item to its class.
// Unknown kinds are dropped; the caller logs them.
func (b *memberBuilder) dispatch(class *Class, kind ItemKind, raw apidocs.RawClassItem) {
	switch kind {
	case KindProperty:
		prop := b.buildProperty(raw)
		if prop.IsStatic {
			class.StaticProperties = append(class.StaticProperties, prop)
		} else {
			class.Properties = append(class.Properties, prop)
		}
	case KindMethod:
		method := b.buildMethod(raw)
		switch {
		case method.IsConstructor:
			class.Constructor = &method
		case method.IsStatic:
			class.StaticMethods = append(class.StaticMethods, method)
		default:
			class.Methods = append(class.Methods, method)
		}
	case KindEvent:
		class.Events = append(class.Events, b.buildEvent(raw))
	case KindUnknown:
	}
}
