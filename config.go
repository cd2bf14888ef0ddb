package fixer

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultResizeDebounce is the default quiet period before a resize is handled.
const DefaultResizeDebounce = 100 * time.Millisecond

// validate is the shared validator instance.
var validate = validator.New()

// Classes holds the marker class names applied by a tracker. The {prefix}
// placeholder in any name is replaced with Prefix.
type Classes struct {
	Prefix    string `yaml:"prefix" json:"prefix"`
	Container string `yaml:"container" json:"container" validate:"required"`
	Element   string `yaml:"element" json:"element" validate:"required"`
	Input     string `yaml:"input" json:"input" validate:"required"`
	Fixed     string `yaml:"fixed" json:"fixed" validate:"required"`
	Bottom    string `yaml:"bottom" json:"bottom" validate:"required"`
	Reset     string `yaml:"reset" json:"reset" validate:"required"`
	Disabled  string `yaml:"disabled" json:"disabled" validate:"required"`
}

// DefaultClasses returns the default marker class names.
func DefaultClasses() Classes {
	return Classes{
		Prefix:    "fixer",
		Container: "{prefix}-container",
		Element:   "{prefix}-element",
		Input:     "is-input",
		Fixed:     "is-fixed",
		Bottom:    "is-bottom",
		Reset:     "is-reset",
		Disabled:  "is-disabled",
	}
}

// resolve fills empty names from the defaults and expands {prefix}.
func (c Classes) resolve() Classes {
	def := DefaultClasses()
	if c.Prefix == "" {
		c.Prefix = def.Prefix
	}
	fill := func(v *string, d string) {
		if *v == "" {
			*v = d
		}
		*v = strings.ReplaceAll(*v, "{prefix}", c.Prefix)
	}
	fill(&c.Container, def.Container)
	fill(&c.Element, def.Element)
	fill(&c.Input, def.Input)
	fill(&c.Fixed, def.Fixed)
	fill(&c.Bottom, def.Bottom)
	fill(&c.Reset, def.Reset)
	fill(&c.Disabled, def.Disabled)
	return c
}

// ScrollEvent is passed to the OnScroll observer after every evaluation.
type ScrollEvent struct {
	Tracker      *Tracker
	Notification Notification
	State        State
	ScrollTop    int
}

// Transition is passed to OnChangeState after every state change.
type Transition struct {
	Tracker *Tracker
	From    State
	To      State
}

// ResizeEvent is passed to OnResize once a debounced resize has been handled.
type ResizeEvent struct {
	Tracker      *Tracker
	Notification Notification
	Start        int
	End          int
}

// Callbacks are the user hooks invoked by a tracker. Each hook receives the
// tracker explicitly. Any hook may be nil.
type Callbacks struct {
	OnFixed   func(*Tracker)
	OnBottom  func(*Tracker)
	OnReset   func(*Tracker)
	OnDisable func(*Tracker)

	// OnScroll observes every evaluation, whether or not the state changed.
	OnScroll func(ScrollEvent)

	// OnChangeState is invoked once per state change, after the per-state hook.
	OnChangeState func(Transition)

	// OnResize is invoked after a debounced resize has been handled.
	OnResize func(ResizeEvent)

	// AfterSetup is invoked once, after notification wiring completes.
	AfterSetup func(*Tracker)
}

// Config describes a single tracker. Start from DefaultConfig; the zero value
// subscribes to no notifications.
type Config struct {
	// Container bounds the element. Nil selects the host's document root.
	Container Node `yaml:"-" json:"-" validate:"-"`

	// Start overrides the activation start. Nil derives it from the
	// element's top; a negative value nudges the element's top; a
	// non-negative value is measured from the container's top.
	Start *int `yaml:"start,omitempty" json:"start,omitempty"`

	// End overrides the distance from the start to the activation end. Nil
	// derives it from the container and element heights.
	End *int `yaml:"end,omitempty" json:"end,omitempty"`

	// Offset is subtracted from both thresholds.
	Offset int `yaml:"offset" json:"offset"`

	// Reverse fixes the element only while scrolling upward.
	Reverse bool `yaml:"reverse" json:"reverse"`

	// Sensitivity is the minimum scroll delta, in pixels, required before
	// the state is re-evaluated. Zero evaluates every notification.
	Sensitivity int `yaml:"sensitivity" json:"sensitivity" validate:"gte=0"`

	ScrollEvent bool `yaml:"scroll_event" json:"scroll_event"`
	ResizeEvent bool `yaml:"resize_event" json:"resize_event"`
	AutoLoad    bool `yaml:"auto_load" json:"auto_load"`

	// ResizeDebounceMs is the quiet period after the last resize before it
	// is handled. Zero selects DefaultResizeDebounce.
	ResizeDebounceMs int `yaml:"resize_debounce_ms" json:"resize_debounce_ms" validate:"gte=0"`

	AutoUpdate   bool `yaml:"auto_update" json:"auto_update"`
	AutoDisable  bool `yaml:"auto_disable" json:"auto_disable"`
	AutoPadding  bool `yaml:"auto_padding" json:"auto_padding"`
	AutoWidth    bool `yaml:"auto_width" json:"auto_width"`
	AutoPosition bool `yaml:"auto_position" json:"auto_position"`

	Classes Classes `yaml:"classes" json:"classes"`

	Callbacks Callbacks `yaml:"-" json:"-" validate:"-"`
}

// DefaultConfig returns a Config with scroll and load notifications enabled
// and every optional feature off.
func DefaultConfig() Config {
	return Config{
		ScrollEvent:      true,
		AutoLoad:         true,
		ResizeDebounceMs: int(DefaultResizeDebounce / time.Millisecond),
		Classes:          DefaultClasses(),
	}
}

// ResizeDebounce returns the debounce period as a duration.
func (c Config) ResizeDebounce() time.Duration {
	if c.ResizeDebounceMs <= 0 {
		return DefaultResizeDebounce
	}
	return time.Duration(c.ResizeDebounceMs) * time.Millisecond
}

// Validate checks the config and returns an error wrapping ErrConfiguration.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	return nil
}

// normalize returns a copy with class names resolved and debounce defaulted.
func (c Config) normalize() Config {
	c.Classes = c.Classes.resolve()
	if c.ResizeDebounceMs == 0 {
		c.ResizeDebounceMs = int(DefaultResizeDebounce / time.Millisecond)
	}
	return c
}

// Int returns a pointer to v, for use with Config.Start and Config.End.
func Int(v int) *int {
	return &v
}
