package strategy

import (
	"fmt"

	"github.com/viant/xconv/descriptor"
)

// Enum converts values to registered enumeration constants
type Enum struct {
	config *Config
}

// Convert matches value with target enumeration constants, unmatched value yields the default
func (e *Enum) Convert(target *descriptor.Type, value, defaultValue interface{}) (interface{}, error) {
	definition, ok := e.config.Enums.Lookup(target.Type())
	if !ok {
		return e.config.fallback(target, value, defaultValue, fmt.Errorf("%v is not a registered enum", target)), nil
	}
	source := indirect(value)
	if !source.IsValid() || !source.CanInterface() {
		return e.config.fallback(target, value, defaultValue, fmt.Errorf("invalid enum source %T", value)), nil
	}
	if ret, ok := definition.Match(source.Interface()); ok {
		return ret, nil
	}
	return e.config.fallback(target, value, defaultValue, fmt.Errorf("no %v constant matches %v", target, value)), nil
}
