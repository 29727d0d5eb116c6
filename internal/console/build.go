package console

import (
	"github.com/pkg/errors"

	"github.com/huynhanx03/go-collections/pkg/datastructs/circvector"
	"github.com/huynhanx03/go-collections/pkg/datastructs/linkedlist"
	"github.com/huynhanx03/go-collections/pkg/datastructs/sequence"
	"github.com/huynhanx03/go-collections/pkg/settings"
)

// NewSequence creates the container selected by cfg.
func NewSequence(cfg settings.Sequence) (sequence.Sequence[string], error) {
	switch cfg.Kind {
	case settings.KindCircVector:
		c, err := circvector.NewWithCapacity[string](cfg.Capacity)
		if err != nil {
			return nil, err
		}
		return c, nil
	case settings.KindLinkedList:
		return linkedlist.New[string](), nil
	default:
		return nil, errors.Errorf("unknown sequence kind %q", cfg.Kind)
	}
}
