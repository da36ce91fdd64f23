package blockkit

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Wire codec helpers
//
// Every node serializes as a JSON object carrying a "type" discriminator.
// Concrete types marshal through a method-less alias and have the discriminator
// spliced in front; polymorphic fields are decoded by probing "type" first and
// dispatching to the concrete variant.

type typeHeader struct {
	Type string `json:"type"`
}

// peekType extracts the "type" discriminator from a JSON object.
func peekType(data []byte) (string, error) {
	var p typeHeader
	if err := json.Unmarshal(data, &p); err != nil {
		return "", fmt.Errorf("failed to read type discriminator: %w", err)
	}
	if p.Type == "" {
		return "", Missing("object", "type")
	}
	return p.Type, nil
}

// tagged prepends "type":typ to a marshalled JSON object.
func tagged(typ string, body []byte, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	name, err := json.Marshal(typ)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.Grow(len(body) + len(name) + 10)
	buf.WriteString(`{"type":`)
	buf.Write(name)
	if len(bytes.TrimSpace(body[1:len(body)-1])) > 0 {
		buf.WriteByte(',')
		buf.Write(body[1:])
	} else {
		buf.WriteByte('}')
	}
	return buf.Bytes(), nil
}

// untag verifies the discriminator of data equals want, then decodes into v.
// v must be a pointer to a method-less alias so decoding does not recurse.
func untag(data []byte, want string, v any) error {
	var p typeHeader
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.Type != want {
		return Conflict(want, fmt.Sprintf("got type %q", p.Type), "type")
	}
	return json.Unmarshal(data, v)
}

// isAbsent reports whether a raw field was missing or explicitly null.
func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// nonNil makes required lists marshal as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// decodeList decodes a raw JSON array with a per-item polymorphic decoder.
func decodeList[T any](raw json.RawMessage, path string, decode func([]byte) (T, error)) ([]T, error) {
	if isAbsent(raw) {
		return nil, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, at(path, err)
	}
	out := make([]T, 0, len(items))
	for i, item := range items {
		v, err := decode(item)
		if err != nil {
			return nil, atIndex(path, i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// decodeVariant decodes data as the concrete type T and returns it as interface I.
func decodeVariant[I any, T any](data []byte) (I, error) {
	var v T
	var zero I
	if err := json.Unmarshal(data, &v); err != nil {
		return zero, err
	}
	out, ok := any(v).(I)
	if !ok {
		return zero, fmt.Errorf("%T is not a valid variant", v)
	}
	return out, nil
}

// Blocks is an ordered list of blocks that decodes polymorphically.
type Blocks []Block

// MarshalJSON never emits null for an empty list.
func (bs Blocks) MarshalJSON() ([]byte, error) {
	return json.Marshal(nonNil([]Block(bs)))
}

// UnmarshalJSON decodes every entry with DecodeBlock.
func (bs *Blocks) UnmarshalJSON(data []byte) error {
	blocks, err := decodeList(data, "blocks", decodeBlockUnchecked)
	if err != nil {
		return err
	}
	if blocks == nil {
		blocks = []Block{}
	}
	*bs = blocks
	return nil
}

// Validate validates every block.
func (bs Blocks) Validate() error {
	for i, b := range bs {
		if b == nil {
			return atIndex("blocks", i, Missing("block", "type"))
		}
		if err := b.Validate(); err != nil {
			return atIndex("blocks", i, err)
		}
	}
	return nil
}

// Message is a message payload: fallback text plus blocks.
type Message struct {
	Text   string `json:"text,omitempty"` // Notification fallback text
	Blocks Blocks `json:"blocks"`
}

// Validate validates the message's blocks.
func (m *Message) Validate() error {
	return m.Blocks.Validate()
}

// EncodeBlocks serializes blocks to wire JSON.
func EncodeBlocks(blocks ...Block) ([]byte, error) {
	return json.Marshal(Blocks(blocks))
}

// DecodeMessage decodes and validates a message payload.
// A bare JSON array is accepted as a blocks-only message.
func DecodeMessage(data []byte) (*Message, error) {
	trimmed := bytes.TrimSpace(data)
	var msg Message
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &msg.Blocks); err != nil {
			return nil, err
		}
	} else if err := json.Unmarshal(trimmed, &msg); err != nil {
		return nil, err
	}
	if msg.Blocks == nil {
		msg.Blocks = Blocks{}
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	return &msg, nil
}
