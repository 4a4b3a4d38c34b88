package xconv

import (
	"log/slog"

	ftime "github.com/viant/tagly/format/time"

	"github.com/viant/xconv/descriptor"
	"github.com/viant/xconv/enum"
	"github.com/viant/xconv/introspect"
	"github.com/viant/xconv/strategy"
)

// Options represents converter options
type Options struct {
	//TagName struct tag used to resolve record field names
	TagName string
	//CaseSensitive disables case and case-format insensitive field matching
	CaseSensitive bool
	//DateLayout time layout used for text to/from time conversion
	DateLayout string
	//CustomFirst makes custom converters take precedence over builtins
	CustomFirst bool
	//AccessUnexported enables unexported record field access
	AccessUnexported bool
	//IgnoreFieldErrors skips record fields that failed to convert
	IgnoreFieldErrors bool
	//Introspector provides record metadata, defaults to xunsafe based introspector
	Introspector introspect.FieldIntrospector
	Logger       *slog.Logger
	Types        *descriptor.Types
	Enums        *enum.Catalog
}

// Option represents converter option
type Option func(o *Options)

// DefaultOptions returns default converter options
func DefaultOptions() Options {
	return Options{
		TagName:     "json",
		DateLayout:  strategy.DefaultDateLayout,
		CustomFirst: true,
	}
}

// WithTagName sets struct tag used for field names
func WithTagName(name string) Option {
	return func(o *Options) {
		o.TagName = name
	}
}

// WithCaseSensitive sets case sensitive field matching
func WithCaseSensitive(flag bool) Option {
	return func(o *Options) {
		o.CaseSensitive = flag
	}
}

// WithDateLayout sets go time layout
func WithDateLayout(layout string) Option {
	return func(o *Options) {
		o.DateLayout = layout
	}
}

// WithDateFormat sets time layout with ISO date format i.e. YYYY-MM-DD hh:mm:ss
func WithDateFormat(format string) Option {
	return func(o *Options) {
		o.DateLayout = ftime.DateFormatToTimeLayout(format)
	}
}

// WithCustomFirst sets converter precedence used by ConvertWithDefault
func WithCustomFirst(flag bool) Option {
	return func(o *Options) {
		o.CustomFirst = flag
	}
}

// WithAccessUnexported enables unexported field access
func WithAccessUnexported(flag bool) Option {
	return func(o *Options) {
		o.AccessUnexported = flag
	}
}

// WithIgnoreFieldErrors skips record fields that failed to convert
func WithIgnoreFieldErrors(flag bool) Option {
	return func(o *Options) {
		o.IgnoreFieldErrors = flag
	}
}

// WithIntrospector sets record introspector
func WithIntrospector(introspector introspect.FieldIntrospector) Option {
	return func(o *Options) {
		o.Introspector = introspector
	}
}

// WithLogger sets logger
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithTypes sets type catalog used to resolve type expressions
func WithTypes(types *descriptor.Types) Option {
	return func(o *Options) {
		o.Types = types
	}
}

// WithEnums sets enum catalog
func WithEnums(enums *enum.Catalog) Option {
	return func(o *Options) {
		o.Enums = enums
	}
}

func (o *Options) init() {
	if o.TagName == "" {
		o.TagName = "json"
	}
	if o.DateLayout == "" {
		o.DateLayout = strategy.DefaultDateLayout
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	if o.Introspector == nil {
		o.Introspector = introspect.New(introspect.WithTagName(o.TagName), introspect.WithUnexported(o.AccessUnexported))
	}
	if o.Types == nil {
		o.Types = descriptor.NewTypes()
	}
	if o.Enums == nil {
		o.Enums = enum.NewCatalog()
	}
}
