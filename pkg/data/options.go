package data

import (
	"github.com/charmbracelet/log"
	"primamateria.systems/reliquary/pkg/annotations"
)

// DefaultScanMarker is the private key recording that an owner's annotations
// have been bulk-loaded.
const DefaultScanMarker = "hasDataAttrs"

type Option func(*options)

type options struct {
	logger     *log.Logger
	prefix     string
	scanMarker string
	reclaim    bool
}

func defaultOptions() options {
	return options{
		prefix:     annotations.DefaultPrefix,
		scanMarker: DefaultScanMarker,
		reclaim:    true,
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithAttributePrefix sets the prefix marking annotations that seed user
// data. Defaults to "data-".
func WithAttributePrefix(prefix string) Option {
	return func(o *options) {
		if prefix != "" {
			o.prefix = prefix
		}
	}
}

func WithScanMarker(key string) Option {
	return func(o *options) {
		if key != "" {
			o.scanMarker = key
		}
	}
}

// WithReclaim controls whether records are released automatically when their
// owner is garbage collected.
func WithReclaim(reclaim bool) Option {
	return func(o *options) {
		o.reclaim = reclaim
	}
}
