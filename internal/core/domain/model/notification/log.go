package notification

import (
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

// Log is the newest-first list of notifications of an atelier.
// The zero value is an empty log ready to use.
type Log struct {
	entries []*Notification
}

// NewLog builds a log from entries already ordered newest first.
func NewLog(entries []*Notification) (*Log, error) {
	l := &Log{entries: make([]*Notification, 0, len(entries))}
	for _, n := range entries {
		if err := n.Validate(); err != nil {
			return nil, err
		}
		l.entries = append(l.entries, n)
	}
	return l, nil
}

// Prepend puts the entry at the front of the log. No deduplication is done.
func (l *Log) Prepend(n *Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}
	l.entries = append([]*Notification{n}, l.entries...)
	return nil
}

// Get returns the entry with the given id.
func (l *Log) Get(id kernel.UUID) (*Notification, error) {
	for _, n := range l.entries {
		if n.id.IsEqual(id) {
			return n, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("notificationId", id)
}

// MarkRead flags one entry as read.
func (l *Log) MarkRead(id kernel.UUID) error {
	n, err := l.Get(id)
	if err != nil {
		return err
	}
	n.MarkRead()
	return nil
}

// MarkAllRead flags every entry as read and returns how many changed.
func (l *Log) MarkAllRead() int {
	changed := 0
	for _, n := range l.entries {
		if !n.read {
			n.MarkRead()
			changed++
		}
	}
	return changed
}

// All returns the entries newest first. The slice is a copy; the entries are not.
func (l *Log) All() []*Notification {
	out := make([]*Notification, len(l.entries))
	copy(out, l.entries)
	return out
}

// Unread returns the unread entries newest first.
func (l *Log) Unread() []*Notification {
	out := make([]*Notification, 0)
	for _, n := range l.entries {
		if !n.read {
			out = append(out, n)
		}
	}
	return out
}

// ForOrder returns the entries about the given order, newest first.
func (l *Log) ForOrder(orderID kernel.UUID) []*Notification {
	out := make([]*Notification, 0)
	for _, n := range l.entries {
		if n.IsAbout(orderID) {
			out = append(out, n)
		}
	}
	return out
}

func (l *Log) Len() int {
	return len(l.entries)
}

// Clone deep-copies the log.
func (l *Log) Clone() *Log {
	c := &Log{entries: make([]*Notification, len(l.entries))}
	for i, n := range l.entries {
		c.entries[i] = n.Clone()
	}
	return c
}
