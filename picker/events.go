package picker

// Listener registration. Listeners are called synchronously from the
// mutating call, in registration order. There is no unregister: pickers
// die with their owner. A listener must not mutate the picker it is
// observing; the result of doing so is undefined.

func (p *Picker[T]) OnItemAdded(fn func(T)) {
	p.added = append(p.added, fn)
}

func (p *Picker[T]) OnItemRemoved(fn func(T)) {
	p.removed = append(p.removed, fn)
}

func (p *Picker[T]) OnChanged(fn func()) {
	p.changed = append(p.changed, fn)
}

func (p *Picker[T]) emitAdded(item T) {
	for _, fn := range p.added {
		fn(item)
	}
}

func (p *Picker[T]) emitRemoved(item T) {
	for _, fn := range p.removed {
		fn(item)
	}
}

func (p *Picker[T]) emitChanged() {
	for _, fn := range p.changed {
		fn()
	}
}
