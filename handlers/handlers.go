package handlers

import (
	"go.uber.org/zap"

	"github.com/muqdisho-plus/site/cache"
)

// Handlers serves the site. Every response is a pure function of the view
// state carried by the request, so rendered output is cached by state.
type Handlers struct {
	log       *zap.Logger
	fragments *cache.Fragments
}

func New(log *zap.Logger, fragments *cache.Fragments) *Handlers {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handlers{log: log, fragments: fragments}
}
