package driver

import (
	"fmt"

	"github.com/camconnect/camcaps/pkg/resolution"
	"github.com/google/uuid"
)

func wrapAdapter(a Adapter, info Info) Driver {
	return &adapterWrapper{
		Adapter: a,
		id:      uuid.NewString(),
		info:    info,
		state:   StateClosed,
	}
}

type adapterWrapper struct {
	Adapter
	id    string
	info  Info
	state State
}

func (w *adapterWrapper) ID() string {
	return w.id
}

func (w *adapterWrapper) Info() Info {
	return w.info
}

func (w *adapterWrapper) Status() State {
	return w.state
}

func (w *adapterWrapper) Open() error {
	return w.state.Update(StateOpened, w.Adapter.Open)
}

func (w *adapterWrapper) Close() error {
	return w.state.Update(StateClosed, w.Adapter.Close)
}

func (w *adapterWrapper) Probe() (resolution.Snapshot, error) {
	if w.state != StateOpened {
		return resolution.Snapshot{}, fmt.Errorf("invalid state: driver hasn't been opened")
	}
	return w.Adapter.Probe()
}
