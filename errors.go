package morphkit

import (
	"errors"
	"fmt"
)

// Sentinel errors matched with errors.Is.
var (
	ErrMalformedBlock = errors.New("malformed block")
	ErrEncode         = errors.New("cannot encode tag")
	ErrDecode         = errors.New("cannot decode tag")
	ErrInvalidConfig  = errors.New("invalid similarity config")
)

// BlockError reports a transcript block that could not be parsed.
type BlockError struct {
	// Index is the 1-based position of the block in the transcript.
	Index  int
	Reason string
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("block %d: %s", e.Index, e.Reason)
}

func (e *BlockError) Unwrap() error { return ErrMalformedBlock }

// EncodeError reports a parse record or tag value that has no valid tag.
type EncodeError struct {
	POS    POS
	Slot   Feature
	Reason string
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s: %s: %s", e.POS, e.Slot, e.Reason)
}

func (e *EncodeError) Unwrap() error { return ErrEncode }

// DecodeError reports a malformed tag string.
type DecodeError struct {
	Tag string
	// Segment is the 0-based index of the hyphen-separated segment.
	Segment int
	// Position is the byte offset of the offending character.
	Position int
	Reason   string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %q: segment %d at byte %d: %s", e.Tag, e.Segment, e.Position, e.Reason)
}

func (e *DecodeError) Unwrap() error { return ErrDecode }

// ConfigError reports an invalid similarity table entry.
type ConfigError struct {
	Feature string
	Reason  string
}

func (e *ConfigError) Error() string {
	if e.Feature == "" {
		return "similarity config: " + e.Reason
	}
	return fmt.Sprintf("similarity config: %s: %s", e.Feature, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }
