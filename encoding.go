package recq

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

type Encoding int

const (
	JSON Encoding = iota
	MsgPack
)

func (enc Encoding) String() string {
	switch enc {
	case JSON:
		return "json"
	case MsgPack:
		return "msgpack"
	default:
		return fmt.Sprintf("Encoding(%d)", int(enc))
	}
}

// ParseEncoding accepts "json", "msgpack" (or "mp").
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(s) {
	case "json":
		return JSON, nil
	case "msgpack", "mp":
		return MsgPack, nil
	default:
		return 0, fmt.Errorf("unknown encoding %q", s)
	}
}

// EncodingForPath picks an encoding by file extension, defaulting to JSON.
func EncodingForPath(path string) Encoding {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".msgpack", ".mp", ".mpk":
		return MsgPack
	default:
		return JSON
	}
}

func (enc Encoding) Encode(v Value) ([]byte, error) {
	switch enc {
	case MsgPack:
		var buf bytes.Buffer
		e := msgpack.GetEncoder()
		e.Reset(&buf)
		e.SetSortMapKeys(true)
		err := v.EncodeMsgpack(e)
		msgpack.PutEncoder(e)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s using MsgPack: %w", v.kind, err)
		}
		return buf.Bytes(), nil
	case JSON:
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s to JSON: %w", v.kind, err)
		}
		return raw, nil
	default:
		panic("unsupported encoding")
	}
}

func (enc Encoding) Decode(data []byte) (Value, error) {
	var v Value
	switch enc {
	case MsgPack:
		r := bytes.NewReader(data)
		d := msgpack.GetDecoder()
		d.Reset(r)
		err := v.DecodeMsgpack(d)
		msgpack.PutDecoder(d)
		if err != nil {
			return Value{}, dataErrf(data, len(data)-r.Len(), err, "failed to decode msgpack")
		}
		return v, nil
	case JSON:
		err := json.Unmarshal(data, &v)
		if err != nil {
			off := 0
			if se, ok := err.(*json.SyntaxError); ok {
				off = int(se.Offset)
			}
			return Value{}, dataErrf(data, off, err, "failed to decode JSON")
		}
		return v, nil
	default:
		panic("unsupported encoding")
	}
}

func (enc Encoding) EncodeCollection(c Collection) ([]byte, error) {
	if c == nil {
		c = Collection{}
	}
	return enc.Encode(ListOf(c...))
}

// DecodeCollection decodes data that must hold a list at the top level.
func (enc Encoding) DecodeCollection(data []byte) (Collection, error) {
	v, err := enc.Decode(data)
	if err != nil {
		return nil, err
	}
	if v.kind != List {
		return nil, dataErrf(data, 0, nil, "collection must be a list, got %s", v.kind)
	}
	return Collection(v.l), nil
}

// DecodeQuery decodes data that must hold a map at the top level.
func (enc Encoding) DecodeQuery(data []byte) (Query, error) {
	v, err := enc.Decode(data)
	if err != nil {
		return nil, err
	}
	if v.kind != Map {
		return nil, dataErrf(data, 0, nil, "query must be a map, got %s", v.kind)
	}
	return Query(v.m), nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case Bool:
		return json.Marshal(v.b)
	case Number:
		if math.IsNaN(v.n) || math.IsInf(v.n, 0) {
			return []byte("null"), nil
		}
		return json.Marshal(v.n)
	case String:
		return json.Marshal(v.s)
	case List:
		if v.l == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.l)
	case Map:
		if v.m == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(map[string]Value(v.m))
	default:
		return []byte("null"), nil
	}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var x any
	if err := dec.Decode(&x); err != nil {
		return err
	}
	cv, err := convert(x)
	if err != nil {
		return err
	}
	*v = cv
	return nil
}

var _ msgpack.CustomEncoder = Value{}
var _ msgpack.CustomDecoder = (*Value)(nil)

func (v Value) EncodeMsgpack(enc *msgpack.Encoder) error {
	switch v.kind {
	case Undefined, Null:
		return enc.EncodeNil()
	case Bool:
		return enc.EncodeBool(v.b)
	case Number:
		if v.n == math.Trunc(v.n) && math.Abs(v.n) < 1<<63 {
			return enc.EncodeInt(int64(v.n))
		}
		return enc.EncodeFloat64(v.n)
	case String:
		return enc.EncodeString(v.s)
	case List:
		if err := enc.EncodeArrayLen(len(v.l)); err != nil {
			return err
		}
		for _, x := range v.l {
			if err := x.EncodeMsgpack(enc); err != nil {
				return err
			}
		}
		return nil
	case Map:
		if err := enc.EncodeMapLen(len(v.m)); err != nil {
			return err
		}
		for _, k := range v.m.Keys() {
			if err := enc.EncodeString(k); err != nil {
				return err
			}
			if err := v.m[k].EncodeMsgpack(enc); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("cannot encode value of kind %s", v.kind)
	}
}

func (v *Value) DecodeMsgpack(dec *msgpack.Decoder) error {
	x, err := dec.DecodeInterface()
	if err != nil {
		return err
	}
	cv, err := convert(x)
	if err != nil {
		return err
	}
	*v = cv
	return nil
}
