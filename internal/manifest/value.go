package manifest

// Kind identifies the shape of a Value
type Kind int

const (
	KindAbsent Kind = iota
	KindNull
	KindString
	KindNumber
	KindBool
	KindList
	KindMap
)

var kindNames = map[Kind]string{
	KindAbsent: "absent",
	KindNull:   "null",
	KindString: "string",
	KindNumber: "number",
	KindBool:   "bool",
	KindList:   "list",
	KindMap:    "map",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Value is a node of a decoded manifest document.
// The zero Value is absent.
type Value struct {
	kind  Kind
	text  string
	flag  bool
	items []Value
	keys  []string
	props map[string]Value
}

// Absent returns the value used for missing keys
func Absent() Value {
	return Value{}
}

// Null returns a JSON null value
func Null() Value {
	return Value{kind: KindNull}
}

// String returns a string value
func String(s string) Value {
	return Value{kind: KindString, text: s}
}

// Number returns a number value holding its literal text
func Number(literal string) Value {
	return Value{kind: KindNumber, text: literal}
}

// Bool returns a boolean value
func Bool(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

// List returns a list value
func List(items ...Value) Value {
	return Value{kind: KindList, items: items}
}

// Kind returns the shape of the value
func (v Value) Kind() Kind {
	return v.kind
}

// IsPresent reports whether the value exists and is not null.
// A JSON null is treated the same as a missing key.
func (v Value) IsPresent() bool {
	return v.kind != KindAbsent && v.kind != KindNull
}

// Str returns the string content and whether the value is a string
func (v Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.text, true
}

// Get returns the value stored under key, or an absent value if v is not a
// map or has no such key.
func (v Value) Get(key string) Value {
	if v.kind != KindMap {
		return Value{}
	}
	return v.props[key]
}

// Keys returns the map keys in document order
func (v Value) Keys() []string {
	if v.kind != KindMap {
		return nil
	}
	return v.keys
}

// Values returns the map values in document order
func (v Value) Values() []Value {
	if v.kind != KindMap {
		return nil
	}
	values := make([]Value, 0, len(v.keys))
	for _, k := range v.keys {
		values = append(values, v.props[k])
	}
	return values
}

// Items returns the elements of a list value
func (v Value) Items() []Value {
	if v.kind != KindList {
		return nil
	}
	return v.items
}

// Len returns the number of entries of a map or list
func (v Value) Len() int {
	switch v.kind {
	case KindMap:
		return len(v.keys)
	case KindList:
		return len(v.items)
	}
	return 0
}

// MapBuilder assembles a map value while preserving insertion order
type MapBuilder struct {
	keys  []string
	props map[string]Value
}

// NewMapBuilder creates an empty MapBuilder
func NewMapBuilder() *MapBuilder {
	return &MapBuilder{props: make(map[string]Value)}
}

// Set stores value under key. A repeated key replaces the earlier value but
// keeps its original position.
func (b *MapBuilder) Set(key string, value Value) *MapBuilder {
	if _, exists := b.props[key]; !exists {
		b.keys = append(b.keys, key)
	}
	b.props[key] = value
	return b
}

// Build returns the map value
func (b *MapBuilder) Build() Value {
	return Value{kind: KindMap, keys: b.keys, props: b.props}
}
