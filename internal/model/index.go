package model

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// OptionalIndex is a position that may be absent. It is stored and sent
// over the wire as -1 when absent.
type OptionalIndex struct {
	idx int
	ok  bool
}

// NoIndex returns the absent index
func NoIndex() OptionalIndex { return OptionalIndex{} }

// SomeIndex returns a present index. Negative values are treated as absent.
func SomeIndex(i int) OptionalIndex {
	if i < 0 {
		return OptionalIndex{}
	}
	return OptionalIndex{idx: i, ok: true}
}

// Get returns the index and whether it is present
func (o OptionalIndex) Get() (int, bool) { return o.idx, o.ok }

// Valid reports whether the index is present
func (o OptionalIndex) Valid() bool { return o.ok }

// Is reports whether the index is present and equal to i
func (o OptionalIndex) Is(i int) bool { return o.ok && o.idx == i }

// Int returns the wire value
func (o OptionalIndex) Int() int {
	if !o.ok {
		return -1
	}
	return o.idx
}

func (o OptionalIndex) String() string {
	if !o.ok {
		return "none"
	}
	return fmt.Sprintf("%d", o.idx)
}

func (o OptionalIndex) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Int())
}

func (o *OptionalIndex) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = NoIndex()
		return nil
	}
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return err
	}
	*o = SomeIndex(i)
	return nil
}

func (o OptionalIndex) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bsontype.Int32, bsoncore.AppendInt32(nil, int32(o.Int())), nil
}

func (o *OptionalIndex) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	v := bsoncore.Value{Type: t, Data: data}
	switch t {
	case bsontype.Null, bsontype.Undefined:
		*o = NoIndex()
	case bsontype.Int32:
		*o = SomeIndex(int(v.Int32()))
	case bsontype.Int64:
		*o = SomeIndex(int(v.Int64()))
	case bsontype.Double:
		*o = SomeIndex(int(v.Double()))
	default:
		return fmt.Errorf("cannot decode %s into an index", t)
	}
	return nil
}
