package sim

import "sync/atomic"

// Device stands in for the host event source of the display device.
type Device struct {
	pending atomic.Int64
	cleared atomic.Int64
}

func NewDevice() *Device {
	return &Device{}
}

func (d *Device) Post() {
	d.pending.Add(1)
}

// ClearEventQueue drops host events queued while the console was waiting.
func (d *Device) ClearEventQueue() {
	d.cleared.Add(d.pending.Swap(0))
}

func (d *Device) Pending() int64 {
	return d.pending.Load()
}

func (d *Device) Cleared() int64 {
	return d.cleared.Load()
}
