package sim

const NrWatchpoints = 32

type watchpoint struct {
	no   int
	next *watchpoint
}

// WatchpointPool is a fixed set of watchpoints kept on a free list.
type WatchpointPool struct {
	pool [NrWatchpoints]watchpoint
	head *watchpoint
	free *watchpoint
}

func NewWatchpointPool() *WatchpointPool {
	return &WatchpointPool{}
}

func (p *WatchpointPool) Init() error {
	for i := range p.pool {
		p.pool[i].no = i
		if i+1 < NrWatchpoints {
			p.pool[i].next = &p.pool[i+1]
		} else {
			p.pool[i].next = nil
		}
	}
	p.head = nil
	p.free = &p.pool[0]
	return nil
}

// Free counts the watchpoints still available.
func (p *WatchpointPool) Free() int {
	n := 0
	for wp := p.free; wp != nil; wp = wp.next {
		n++
	}
	return n
}
