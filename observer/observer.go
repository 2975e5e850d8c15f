// Package observer maintains the set of callbacks a clock notifies when it
// completes a period.
//
// The registry is an intrusive singly linked list: each Observer is its own
// list node, identified by its address. The registry never copies or
// allocates entries; whoever creates an entry owns its storage and must
// unregister it before discarding it.
package observer

// Func is the callback invoked on notification. The ctx value is the one
// supplied at registration, passed through untouched.
type Func func(ctx any)

// Observer is a single registry entry: a callback plus its private context.
//
// An entry must not be linked into more than one List, or twice into the
// same List, at the same time.
type Observer struct {
	action  Func
	context any
	next    *Observer
}

// New creates an unlinked entry that invokes action with ctx on every
// notification.
func New(action Func, ctx any) *Observer {
	return &Observer{action: action, context: ctx}
}

// List is a registry of observers in reverse registration order. The zero
// value is an empty registry ready to use. A List is not safe for
// concurrent use; callers sharing one across goroutines must serialize
// access.
type List struct {
	head *Observer
}

// Register links o at the head of the list. Nil entries are ignored.
// Registering an entry that is already linked corrupts the chain; that is a
// caller contract violation, not a checked error.
func (l *List) Register(o *Observer) {
	if o == nil {
		return
	}
	o.next = l.head
	l.head = o
}

// Unregister unlinks o. Removing an entry that is not linked, or removing
// it twice, is a no-op.
func (l *List) Unregister(o *Observer) {
	if o == nil {
		return
	}
	for cur := &l.head; *cur != nil; cur = &(*cur).next {
		if *cur == o {
			*cur = o.next
			o.next = nil
			return
		}
	}
}

// ForEach visits every entry head-to-tail, most recently registered first,
// passing visit each entry's callback and context.
//
// The head is captured once, so entries registered during the traversal are
// not visited in this pass. Each entry's link is read before visit runs,
// which makes it safe for a callback to unregister its own entry;
// unregistering any other entry from inside a callback leaves the traversal
// undefined.
func (l *List) ForEach(visit func(Func, any)) {
	for o, next := l.head, (*Observer)(nil); o != nil; o = next {
		next = o.next
		visit(o.action, o.context)
	}
}

// Notify invokes every registered callback with its context. Entries with a
// nil action are skipped.
func (l *List) Notify() {
	l.ForEach(func(fn Func, ctx any) {
		if fn != nil {
			fn(ctx)
		}
	})
}

// Len reports the number of registered entries.
func (l *List) Len() int {
	n := 0
	for o := l.head; o != nil; o = o.next {
		n++
	}
	return n
}

// Clear unlinks every entry, leaving them ready for re-registration.
func (l *List) Clear() {
	o := l.head
	l.head = nil
	for o != nil {
		next := o.next
		o.next = nil
		o = next
	}
}
