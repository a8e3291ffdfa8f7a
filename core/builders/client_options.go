package builders

import "strings"

type clientConfig struct {
	placeholders   PlaceholderStyle
	typeProcessors map[string]func(any) any
}

type ClientOption func(*clientConfig)

func WithCustomTypeProcessor(typ string, fn func(any) any) ClientOption {
	return func(cc *clientConfig) {
		t := strings.ToLower(typ)
		_, ok := cc.typeProcessors[t]
		if ok {
			// processor already registered for this type
			return
		}

		cc.typeProcessors[t] = fn
	}
}

// WithPlaceholders sets the bind parameter style of the database.
func WithPlaceholders(style PlaceholderStyle) ClientOption {
	return func(cc *clientConfig) {
		cc.placeholders = style
	}
}
