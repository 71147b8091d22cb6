// SPDX-License-Identifier: Unlicense OR MIT

package text

// layoutCache is a least recently used cache of wrapped rows.
type layoutCache struct {
	m          map[layoutKey]*layoutElem
	head, tail *layoutElem
}

type layoutElem struct {
	next, prev *layoutElem
	key        layoutKey
	rows       []string
}

type layoutKey struct {
	maxWidth float64
	maxLines int
	str      string
}

const maxSize = 64

func (l *layoutCache) Get(k layoutKey) ([]string, bool) {
	if lt, ok := l.m[k]; ok {
		l.remove(lt)
		l.insert(lt)
		return lt.rows, true
	}
	return nil, false
}

func (l *layoutCache) Put(k layoutKey, rows []string) {
	if l.m == nil {
		l.m = make(map[layoutKey]*layoutElem)
		l.head = new(layoutElem)
		l.tail = new(layoutElem)
		l.head.prev = l.tail
		l.tail.next = l.head
	}
	if lt, ok := l.m[k]; ok {
		l.remove(lt)
	}
	val := &layoutElem{key: k, rows: rows}
	l.m[k] = val
	l.insert(val)
	if len(l.m) > maxSize {
		oldest := l.tail.next
		l.remove(oldest)
		delete(l.m, oldest.key)
	}
}

func (l *layoutCache) remove(lt *layoutElem) {
	lt.next.prev = lt.prev
	lt.prev.next = lt.next
}

func (l *layoutCache) insert(lt *layoutElem) {
	lt.next = l.head
	lt.prev = l.head.prev
	lt.prev.next = lt
	lt.next.prev = lt
}
