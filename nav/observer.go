package nav

// Observer receives informational notifications from the Navigator. "No move
// possible" is not an error (the cursor simply stays put), so it is reported
// here rather than through the error path.
type Observer interface {
	// NoMove is called when a movement operation could not advance the cursor.
	NoMove(reason string)
	// ItemCompleted is called when an item is explicitly marked completed.
	ItemCompleted(item *Item)
}

// ObserverFuncs adapts plain functions to the Observer interface. Nil fields
// are skipped.
type ObserverFuncs struct {
	OnNoMove        func(reason string)
	OnItemCompleted func(item *Item)
}

func (o ObserverFuncs) NoMove(reason string) {
	if o.OnNoMove != nil {
		o.OnNoMove(reason)
	}
}

func (o ObserverFuncs) ItemCompleted(item *Item) {
	if o.OnItemCompleted != nil {
		o.OnItemCompleted(item)
	}
}

// Observers fans notifications out to several observers in order.
func Observers(obs ...Observer) Observer {
	return multiObserver(obs)
}

type multiObserver []Observer

func (m multiObserver) NoMove(reason string) {
	for _, o := range m {
		if o != nil {
			o.NoMove(reason)
		}
	}
}

func (m multiObserver) ItemCompleted(item *Item) {
	for _, o := range m {
		if o != nil {
			o.ItemCompleted(item)
		}
	}
}

func (n *Navigator) notifyNoMove(reason string) {
	if n.observer != nil {
		n.observer.NoMove(reason)
	}
}

func (n *Navigator) notifyCompleted(item *Item) {
	if n.observer != nil {
		n.observer.ItemCompleted(item)
	}
}
