package pageritems

import (
	"reflect"

	"github.com/go-logr/logr"
)

// EqualFunc reports whether two data values are equal. RemoveData uses it to
// find the value to remove.
type EqualFunc func(a, b any) bool

// Options control store behavior.
type Options struct {
	// Logger receives mutation traces at V(1). Defaults to logr.Discard().
	Logger logr.Logger

	// Data seeds the data segment. A nil slice leaves the segment unset.
	Data []any

	// NotifyOnChange is the initial propagation policy. Defaults to true.
	NotifyOnChange bool

	// Equal compares data values. Defaults to reflect.DeepEqual.
	Equal EqualFunc
}

// Option modifies Options.
type Option func(*Options)

func WithLogger(l logr.Logger) Option { return func(o *Options) { o.Logger = l } }

func WithData(data ...any) Option {
	return func(o *Options) {
		if data == nil {
			data = []any{}
		}
		o.Data = data
	}
}

func WithNotifyOnChange(b bool) Option { return func(o *Options) { o.NotifyOnChange = b } }

func WithDataEqual(fn EqualFunc) Option { return func(o *Options) { o.Equal = fn } }

func defaultOptions() Options {
	return Options{
		Logger:         logr.Discard(),
		NotifyOnChange: true,
		Equal:          reflect.DeepEqual,
	}
}

// EntryOption modifies a header or footer entry at creation time.
type EntryOption func(*Entry)
