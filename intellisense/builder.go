package intellisense

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fdmota/breeze.js/apidocs"
	"github.com/fdmota/breeze.js/logger"
)

// DefaultReservedPrefix marks internal classes excluded from the model
const DefaultReservedPrefix = "ↈ"

// BuildOptions configures model construction
type BuildOptions struct {
	// Namespace prefixes qualified type names (default "breeze")
	Namespace string
	// ReservedPrefix excludes classes whose name starts with it (default "ↈ")
	ReservedPrefix string
	// DisableReservedPrefix registers every class regardless of ReservedPrefix
	DisableReservedPrefix bool
	// CtorMarker marks constructor methods (default "<ctor>")
	CtorMarker string
	// EventRouting selects the event discriminator (default legacy)
	EventRouting EventRouting

	// Now stamps the model; defaults to time.Now
	Now    func() time.Time
	Logger *zap.SugaredLogger
}

func (o BuildOptions) withDefaults() BuildOptions {
	if o.Namespace == "" {
		o.Namespace = "breeze"
	}
	if o.ReservedPrefix == "" {
		o.ReservedPrefix = DefaultReservedPrefix
	}
	if o.CtorMarker == "" {
		o.CtorMarker = "<ctor>"
	}
	if o.EventRouting == "" {
		o.EventRouting = EventRoutingLegacy
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop().Sugar()
	}
	return o
}

// modelBuilder holds the state of one Build call
type modelBuilder struct {
	opts     BuildOptions
	registry *Registry
	members  *memberBuilder
	model    *Model
	log      *zap.SugaredLogger
}

// Build turns a parsed document into a Model.
//
// Every class is registered before any class item is processed, so items may
// reference classes declared later in the document. Each call uses a fresh
// registry.
func Build(doc *apidocs.Document, opts BuildOptions) *Model {
	opts = opts.withDefaults()
	registry := NewRegistry()

	b := &modelBuilder{
		opts:     opts,
		registry: registry,
		members: &memberBuilder{
			resolver:   NewResolver(registry, opts.Namespace),
			ctorMarker: opts.CtorMarker,
		},
		model: &Model{
			Namespace:   opts.Namespace,
			GeneratedAt: opts.Now(),
		},
		log: opts.Logger,
	}

	b.registerClasses(doc.Classes)
	b.assignItems(doc.ClassItems)

	b.model.Modules = registry.Modules()
	return b.model
}

// registerClasses is phase one: modules are created on first mention, and
// every class not carrying the reserved prefix is indexed in its module.
func (b *modelBuilder) registerClasses(classes []apidocs.RawClass) {
	excluded := 0
	for _, raw := range classes {
		module := b.registry.ensureModule(raw.Module)

		if !b.opts.DisableReservedPrefix && strings.HasPrefix(raw.Name, b.opts.ReservedPrefix) {
			excluded++
			b.log.Debugw("Skipping reserved class", logger.FieldModule, raw.Module, logger.FieldClass, raw.Name)
			continue
		}

		if _, dup := module.classesByName[raw.Name]; dup {
			b.model.DuplicateClasses = append(b.model.DuplicateClasses, DuplicateClass{Module: module.Name, Name: raw.Name})
			b.log.Warnw("Duplicate class name, later declaration wins lookups",
				logger.FieldModule, module.Name, logger.FieldClass, raw.Name)
		}

		class := &Class{
			Name:        raw.Name,
			Description: NormalizeMultiline(raw.Description),
			IsStatic:    bool(raw.Static),
		}
		module.classesByName[raw.Name] = class
		module.Classes = append(module.Classes, class)
	}

	b.log.Infow("Registered classes",
		logger.FieldPhase, "register",
		"modules", len(b.registry.Modules()),
		logger.FieldCount, len(classes)-excluded,
		"excluded", excluded)
}

// assignItems is phase two: each item goes to the class its module/class pair
// names, or to one of the model's side collections. No module or class is
// created here.
func (b *modelBuilder) assignItems(items []apidocs.RawClassItem) {
	for _, raw := range items {
		module := b.registry.Module(raw.Module)
		if module == nil {
			b.model.ItemsForUnknownModule = append(b.model.ItemsForUnknownModule, raw)
			b.log.Debugw("Item references unknown module",
				logger.FieldModule, raw.Module, logger.FieldClass, raw.Class, logger.FieldItem, raw.Name)
			continue
		}

		class, ok := module.classesByName[raw.Class]
		if !ok {
			b.model.UnassignedItems = append(b.model.UnassignedItems, raw)
			b.log.Debugw("Item references unknown class",
				logger.FieldModule, raw.Module, logger.FieldClass, raw.Class, logger.FieldItem, raw.Name)
			continue
		}

		kind := classifyItem(raw, b.opts.EventRouting)
		if kind == KindUnknown {
			b.log.Debugw("Ignoring item of unrouted kind",
				logger.FieldClass, raw.Class, logger.FieldItem, raw.Name, logger.FieldItemType, raw.ItemType)
		}
		b.members.dispatch(class, kind, raw)
	}

	b.log.Infow("Assigned class items",
		logger.FieldPhase, "assign",
		logger.FieldCount, len(items),
		"unassigned", len(b.model.UnassignedItems),
		"unknown_module", len(b.model.ItemsForUnknownModule))
}
