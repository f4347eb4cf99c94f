package jsontree

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned by [Parse] when the input is not a single valid
// JSON document.
var ErrInvalidJSON = errors.New("invalid JSON document")

// Kind identifies which variant a [Value] holds.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

var kindNames = [...]string{
	Null:   "null",
	Bool:   "bool",
	Number: "number",
	String: "string",
	Array:  "array",
	Object: "object",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Member is one key/value pair of an object, in document order.
type Member struct {
	Key   string
	Value Value
}

// Value is a parsed JSON value. The zero Value is JSON null.
type Value struct {
	kind    Kind
	boolean bool
	num     float64
	text    string // string contents, or the literal text of a number
	items   []Value
	members []Member
}

// =============================================================================
// Constructors
// =============================================================================

// NullValue returns JSON null.
func NullValue() Value { return Value{} }

// BoolValue returns a JSON boolean.
func BoolValue(b bool) Value { return Value{kind: Bool, boolean: b} }

// NumberValue returns a JSON number with its literal text.
// The text is kept so integers round-trip without a float conversion.
func NumberValue(literal string) Value {
	f, _ := strconv.ParseFloat(literal, 64)
	return Value{kind: Number, num: f, text: literal}
}

// StringValue returns a JSON string.
func StringValue(s string) Value { return Value{kind: String, text: s} }

// ArrayValue returns a JSON array holding items.
func ArrayValue(items ...Value) Value {
	return Value{kind: Array, items: items}
}

// ObjectValue returns a JSON object with the given members. Duplicate keys are
// collapsed the same way [Parse] collapses them.
func ObjectValue(members ...Member) Value {
	b := newObjectBuilder()
	for _, m := range members {
		b.set(m.Key, m.Value)
	}
	return b.value()
}

// =============================================================================
// Accessors
// =============================================================================

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is JSON null.
func (v Value) IsNull() bool { return v.kind == Null }

// Bool returns the boolean held by v, or false for other kinds.
func (v Value) Bool() bool { return v.kind == Bool && v.boolean }

// Float returns the numeric value of v, or 0 for other kinds.
func (v Value) Float() float64 {
	if v.kind != Number {
		return 0
	}
	return v.num
}

// IsInteger reports whether v is a number written without a fraction or
// exponent.
func (v Value) IsInteger() bool {
	return v.kind == Number && !strings.ContainsAny(v.text, ".eE")
}

// Str returns the contents of a string value, or "" for other kinds.
func (v Value) Str() string {
	if v.kind != String {
		return ""
	}
	return v.text
}

// Items returns the items of an array, or nil for other kinds.
func (v Value) Items() []Value {
	if v.kind != Array {
		return nil
	}
	return v.items
}

// Members returns the members of an object in document order, or nil for
// other kinds.
func (v Value) Members() []Member {
	if v.kind != Object {
		return nil
	}
	return v.members
}

// Len returns the number of items or members, or 0 for scalars.
func (v Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.items)
	case Object:
		return len(v.members)
	default:
		return 0
	}
}

// Get returns the member value stored under key.
// It returns false when v is not an object or has no such key.
func (v Value) Get(key string) (Value, bool) {
	for _, m := range v.Members() {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Field returns the member stored under key, or null when absent.
func (v Value) Field(key string) Value {
	f, _ := v.Get(key)
	return f
}

// StringField returns the string stored under key, or "" when the member is
// absent or not a string.
func (v Value) StringField(key string) string {
	return v.Field(key).Str()
}

// Keys returns the member keys of an object in document order.
func (v Value) Keys() []string {
	members := v.Members()
	if len(members) == 0 {
		return nil
	}
	keys := make([]string, len(members))
	for i, m := range members {
		keys[i] = m.Key
	}
	return keys
}

// String renders v as compact JSON. Object members keep document order.
func (v Value) String() string {
	var sb strings.Builder
	v.write(&sb)
	return sb.String()
}

func (v Value) write(sb *strings.Builder) {
	switch v.kind {
	case Null:
		sb.WriteString("null")
	case Bool:
		sb.WriteString(strconv.FormatBool(v.boolean))
	case Number:
		sb.WriteString(v.text)
	case String:
		sb.WriteString(strconv.Quote(v.text))
	case Array:
		sb.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				sb.WriteByte(',')
			}
			item.write(sb)
		}
		sb.WriteByte(']')
	case Object:
		sb.WriteByte('{')
		for i, m := range v.members {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Quote(m.Key))
			sb.WriteByte(':')
			m.Value.write(sb)
		}
		sb.WriteByte('}')
	}
}

// =============================================================================
// Parsing
// =============================================================================

// Parse decodes a complete JSON document.
func Parse(data []byte) (Value, error) {
	if !gjson.ValidBytes(data) {
		return Value{}, fmt.Errorf("%w (%d bytes)", ErrInvalidJSON, len(data))
	}
	return fromResult(gjson.ParseBytes(data)), nil
}

func fromResult(r gjson.Result) Value {
	switch r.Type {
	case gjson.False:
		return BoolValue(false)
	case gjson.True:
		return BoolValue(true)
	case gjson.Number:
		return Value{kind: Number, num: r.Num, text: r.Raw}
	case gjson.String:
		return StringValue(r.Str)
	case gjson.JSON:
		if r.IsArray() {
			items := []Value{}
			r.ForEach(func(_, item gjson.Result) bool {
				items = append(items, fromResult(item))
				return true
			})
			return ArrayValue(items...)
		}
		b := newObjectBuilder()
		r.ForEach(func(key, val gjson.Result) bool {
			b.set(key.Str, fromResult(val))
			return true
		})
		return b.value()
	default:
		return NullValue()
	}
}

type objectBuilder struct {
	members []Member
	index   map[string]int
}

func newObjectBuilder() *objectBuilder {
	return &objectBuilder{index: make(map[string]int)}
}

func (b *objectBuilder) set(key string, v Value) {
	if i, ok := b.index[key]; ok {
		b.members[i].Value = v
		return
	}
	b.index[key] = len(b.members)
	b.members = append(b.members, Member{Key: key, Value: v})
}

func (b *objectBuilder) value() Value {
	members := b.members
	if members == nil {
		members = []Member{}
	}
	return Value{kind: Object, members: members}
}
