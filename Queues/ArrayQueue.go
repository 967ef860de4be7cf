package Queues

// ArrayQueue is a Queue backed by a circular slice. It grows by half of its length when full.
type ArrayQueue[T any] struct {
	sz, head, tail uint
	content        []T
}

func NewArrayQueue[T any](initCap uint) *ArrayQueue[T] {
	return &ArrayQueue[T]{content: make([]T, initCap|1)}
}

func (u *ArrayQueue[T]) Empty() bool {
	return u.sz == 0
}

func (u *ArrayQueue[T]) Size() uint {
	return u.sz
}

// resize the backing slice to newLen>=sz, moving the content to the front.
func (u *ArrayQueue[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if u.head < u.tail {
		copy(nc, u.content[u.head:u.tail])
	} else if u.sz > 0 {
		n := copy(nc, u.content[u.head:])
		copy(nc[n:], u.content[:u.tail])
	}
	u.content, u.head, u.tail = nc, 0, u.sz%newLen
}

// Shrink the backing slice to fit the content.
func (u *ArrayQueue[T]) Shrink() {
	u.resize(u.sz | 1)
}

// Clear the queue. Keeps the backing slice.
func (u *ArrayQueue[T]) Clear() {
	clear(u.content)
	u.tail, u.head, u.sz = 0, 0, 0
}

func (u *ArrayQueue[T]) Push(item T) {
	if l := uint(len(u.content)); u.sz == l {
		u.resize(l + l>>1 + 1)
	}
	u.content[u.tail] = item
	u.tail = (u.tail + 1) % uint(len(u.content))
	u.sz++
}

func (u *ArrayQueue[T]) Pop() (item T, e error) {
	if u.sz == 0 {
		return item, &EmptyQueueError{}
	}
	item = u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return item, nil
}

func (u *ArrayQueue[T]) Peek() (item T, ok bool) {
	if u.sz == 0 {
		return
	}
	return u.content[u.head], true
}
