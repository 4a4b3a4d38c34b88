// Package enum provides a catalog of enumerated types.
// Go has no enum declarations, so the constants of a named type are registered explicitly
// and matched by name, declared lookup value, underlying value or ordinal position.
package enum

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"

	"golang.org/x/text/cases"
)

type (
	//Lookup returns alternative lookup value for an enum constant, i.e. a code
	Lookup func(constant interface{}) interface{}

	//Option represents definition option
	Option func(d *Definition)

	//Definition represents enum type definition
	Definition struct {
		Type      reflect.Type
		constants []reflect.Value
		names     map[string]int
		folded    map[string]int
		lookup    Lookup
		lookups   map[string]int
	}

	//Catalog represents enum definitions registry
	Catalog struct {
		definitions sync.Map // map[reflect.Type]*Definition
	}
)

// WithLookup sets declared lookup function
func WithLookup(lookup Lookup) Option {
	return func(d *Definition) {
		d.lookup = lookup
	}
}

// Constants returns enum constants in ordinal order
func (d *Definition) Constants() []interface{} {
	var result = make([]interface{}, len(d.constants))
	for i, constant := range d.constants {
		result[i] = constant.Interface()
	}
	return result
}

// ByName returns constant matched by name, exact match takes precedence over case-folded one
func (d *Definition) ByName(name string) (interface{}, bool) {
	if pos, ok := d.names[name]; ok {
		return d.constants[pos].Interface(), true
	}
	if pos, ok := d.folded[fold(name)]; ok {
		return d.constants[pos].Interface(), true
	}
	return nil, false
}

// ByOrdinal returns constant at ordinal position
func (d *Definition) ByOrdinal(ordinal int) (interface{}, bool) {
	if ordinal < 0 || ordinal >= len(d.constants) {
		return nil, false
	}
	return d.constants[ordinal].Interface(), true
}

// ByLookup returns constant matched by declared lookup value
func (d *Definition) ByLookup(value interface{}) (interface{}, bool) {
	if len(d.lookups) == 0 {
		return nil, false
	}
	if pos, ok := d.lookups[fmt.Sprint(value)]; ok {
		return d.constants[pos].Interface(), true
	}
	return nil, false
}

// ByValue returns constant with the same underlying value
func (d *Definition) ByValue(value interface{}) (interface{}, bool) {
	source := reflect.ValueOf(value)
	if !source.IsValid() || !source.Type().ConvertibleTo(d.Type) {
		return nil, false
	}
	if source.Kind() == reflect.String && d.Type.Kind() != reflect.String {
		return nil, false
	}
	if d.Type.Kind() == reflect.String && source.Kind() != reflect.String {
		return nil, false
	}
	candidate := source.Convert(d.Type).Interface()
	for _, constant := range d.constants {
		if constant.Interface() == candidate {
			return candidate, true
		}
	}
	return nil, false
}

// Match matches source value with declared lookup value, name, underlying value and ordinal
func (d *Definition) Match(value interface{}) (interface{}, bool) {
	if ret, ok := d.ByLookup(value); ok {
		return ret, true
	}
	switch actual := value.(type) {
	case string:
		if ret, ok := d.ByName(actual); ok {
			return ret, true
		}
		if ret, ok := d.ByValue(actual); ok {
			return ret, true
		}
		if ordinal, err := strconv.Atoi(actual); err == nil {
			return d.ByOrdinal(ordinal)
		}
		return nil, false
	case fmt.Stringer:
		if ret, ok := d.ByName(actual.String()); ok {
			return ret, true
		}
	}
	if ret, ok := d.ByValue(value); ok {
		return ret, true
	}
	source := reflect.ValueOf(value)
	switch source.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return d.ByOrdinal(int(source.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return d.ByOrdinal(int(source.Uint()))
	}
	return nil, false
}

func (d *Definition) init(constants []interface{}) error {
	d.names = make(map[string]int, len(constants))
	d.folded = make(map[string]int, len(constants))
	for i, constant := range constants {
		value := reflect.ValueOf(constant)
		if !value.IsValid() || value.Type() != d.Type {
			return fmt.Errorf("invalid enum %v constant at %v: %T", d.Type, i, constant)
		}
		if !value.Comparable() {
			return fmt.Errorf("invalid enum %v constant at %v: not comparable", d.Type, i)
		}
		d.constants = append(d.constants, value)
		name := nameOf(constant)
		if _, ok := d.names[name]; !ok {
			d.names[name] = i
		}
		if _, ok := d.folded[fold(name)]; !ok {
			d.folded[fold(name)] = i
		}
	}
	if d.lookup != nil {
		d.lookups = make(map[string]int, len(constants))
		for i, constant := range constants {
			key := fmt.Sprint(d.lookup(constant))
			if _, ok := d.lookups[key]; !ok {
				d.lookups[key] = i
			}
		}
	}
	return nil
}

// Register registers enum constants, all constants have to share the same type
func (c *Catalog) Register(constants []interface{}, opts ...Option) error {
	if len(constants) == 0 {
		return fmt.Errorf("enum constants were empty")
	}
	if constants[0] == nil {
		return fmt.Errorf("invalid enum constant: nil")
	}
	ret := &Definition{Type: reflect.TypeOf(constants[0])}
	if !ret.Type.Comparable() {
		return fmt.Errorf("invalid enum type %v: not comparable", ret.Type)
	}
	for _, opt := range opts {
		opt(ret)
	}
	if err := ret.init(constants); err != nil {
		return err
	}
	c.definitions.Store(ret.Type, ret)
	return nil
}

// Lookup returns enum definition
func (c *Catalog) Lookup(rType reflect.Type) (*Definition, bool) {
	if c == nil || rType == nil {
		return nil, false
	}
	value, ok := c.definitions.Load(rType)
	if !ok {
		return nil, false
	}
	return value.(*Definition), true
}

// IsEnum returns true if type was registered
func (c *Catalog) IsEnum(rType reflect.Type) bool {
	_, ok := c.Lookup(rType)
	return ok
}

// NewCatalog creates enum catalog
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Register registers typed enum constants
func Register[T comparable](catalog *Catalog, constants []T, opts ...Option) error {
	values := make([]interface{}, len(constants))
	for i, constant := range constants {
		values[i] = constant
	}
	return catalog.Register(values, opts...)
}

func nameOf(constant interface{}) string {
	switch actual := constant.(type) {
	case fmt.Stringer:
		return actual.String()
	}
	value := reflect.ValueOf(constant)
	if value.Kind() == reflect.String {
		return value.String()
	}
	return fmt.Sprint(constant)
}

func fold(text string) string {
	return cases.Fold().String(text)
}
