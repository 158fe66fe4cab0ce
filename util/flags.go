package util

//*******************************************
// resettable flags
//*******************************************

// Flags is a dense per-item workspace with O(1) Reset.
//
// Entries are lazily re-initialized to the default value after a Reset,
// tracked by a version stamp per slot.
type Flags[T any] struct {
	data     []T
	versions []int32
	version  int32
	_default T
}

func NewFlags[T any](size int32, _default T) Flags[T] {
	return Flags[T]{
		data:     make([]T, size),
		versions: make([]int32, size),
		version:  1,
		_default: _default,
	}
}

func (self *Flags[T]) Get(index int32) *T {
	if self.versions[index] != self.version {
		self.data[index] = self._default
		self.versions[index] = self.version
	}
	return &self.data[index]
}

func (self *Flags[T]) IsSet(index int32) bool {
	return self.versions[index] == self.version
}

func (self *Flags[T]) Reset() {
	self.version += 1
}

func (self *Flags[T]) Length() int {
	return len(self.data)
}
