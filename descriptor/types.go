package descriptor

import (
	"encoding/json"
	"math/big"
	"net/url"
	"reflect"
	"sync"
	"time"
)

// Types represents named type catalog used by type expressions
type Types struct {
	mux   sync.RWMutex
	types map[string]reflect.Type
}

// Register registers type under supplied name
func (t *Types) Register(name string, rType reflect.Type) {
	t.mux.Lock()
	defer t.mux.Unlock()
	t.types[name] = rType
}

// RegisterType registers type under its qualified (pkg.Name) name and full package path name
func (t *Types) RegisterType(rType reflect.Type) {
	t.mux.Lock()
	defer t.mux.Unlock()
	t.types[rType.String()] = rType
	if pkg := rType.PkgPath(); pkg != "" && rType.Name() != "" {
		t.types[pkg+"."+rType.Name()] = rType
	}
}

// Lookup returns a type for supplied name
func (t *Types) Lookup(name string) (reflect.Type, bool) {
	t.mux.RLock()
	defer t.mux.RUnlock()
	ret, ok := t.types[name]
	return ret, ok
}

// NewTypes creates a type catalog with predeclared types
func NewTypes() *Types {
	ret := &Types{types: map[string]reflect.Type{}}
	for _, sample := range []interface{}{
		false, "", 0, int8(0), int16(0), int32(0), int64(0),
		uint(0), uint8(0), uint16(0), uint32(0), uint64(0), uintptr(0),
		float32(0), float64(0), complex64(0), complex128(0),
	} {
		rType := reflect.TypeOf(sample)
		ret.types[rType.Name()] = rType
	}
	ret.types["byte"] = reflect.TypeOf(byte(0))
	ret.types["rune"] = reflect.TypeOf(rune(0))
	ret.types["error"] = reflect.TypeOf((*error)(nil)).Elem()
	ret.types["any"] = reflect.TypeOf((*interface{})(nil)).Elem()
	for _, rType := range []reflect.Type{
		reflect.TypeOf(time.Time{}),
		reflect.TypeOf(time.Duration(0)),
		reflect.TypeOf(json.Number("")),
		reflect.TypeOf(url.URL{}),
		reflect.TypeOf(big.Int{}),
		reflect.TypeOf(big.Float{}),
		reflect.TypeOf(big.Rat{}),
	} {
		ret.types[rType.String()] = rType
	}
	return ret
}
