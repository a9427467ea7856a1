package assets

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Tnze/go-mc/chat"
)

// TextureMeta is the content of a `textures/**.png.mcmeta` file
type TextureMeta struct {
	Animation *Animation `json:"animation,omitempty" yaml:"animation,omitempty"`
}

// Animation describes an animated texture. The png contains the frames
// stacked vertically.
type Animation struct {
	Interpolate *bool            `json:"interpolate,omitempty" yaml:"interpolate,omitempty"`
	Width       *int             `json:"width,omitempty" yaml:"width,omitempty"`
	Height      *int             `json:"height,omitempty" yaml:"height,omitempty"`
	FrameTime   *int             `json:"frametime,omitempty" yaml:"frametime,omitempty"`
	Frames      []AnimationFrame `json:"frames,omitempty" yaml:"frames,omitempty"`
}

// DefaultFrameTime returns the frame time in ticks (1 if unset)
func (a *Animation) DefaultFrameTime() int {
	if a.FrameTime == nil {
		return 1
	}
	return *a.FrameTime
}

// AnimationFrame is one entry of "frames". In json it is either a plain
// index or `{"index": 2, "time": 5}`.
type AnimationFrame struct {
	Index int  `json:"index" yaml:"index"`
	Time  *int `json:"time,omitempty" yaml:"time,omitempty"`
}

// UnmarshalJSON accepts both frame formats
func (f *AnimationFrame) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		type plain AnimationFrame
		var frame struct {
			plain
			Index *int `json:"index"`
		}
		if err := json.Unmarshal(data, &frame); err != nil {
			return err
		}
		if frame.Index == nil {
			return fmt.Errorf("animation frame is missing \"index\"")
		}
		*f = AnimationFrame(frame.plain)
		f.Index = *frame.Index
		return nil
	}
	*f = AnimationFrame{}
	return json.Unmarshal(data, &f.Index)
}

// MarshalJSON writes frames without time as a plain index
func (f AnimationFrame) MarshalJSON() ([]byte, error) {
	if f.Time == nil {
		return json.Marshal(f.Index)
	}
	type plain AnimationFrame
	return json.Marshal(plain(f))
}

// PackMeta is the content of `pack.mcmeta`
type PackMeta struct {
	Pack PackInfo `json:"pack" yaml:"pack"`
}

// PackInfo is the "pack" section of pack.mcmeta
type PackInfo struct {
	PackFormat int `json:"pack_format" yaml:"pack_format"`
	// Description is a string or a text component
	Description json.RawMessage `json:"description" yaml:"-"`
}

// DescriptionText returns the description as plain text without formatting.
// Invalid descriptions are returned as raw json.
func (p PackInfo) DescriptionText() string {
	var msg chat.Message
	if err := json.Unmarshal(p.Description, &msg); err != nil {
		return string(p.Description)
	}
	return msg.ClearString()
}
