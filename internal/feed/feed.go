package feed

// Status is the availability reported by the runtime for a feed.
type Status int

const (
	Unavailable Status = iota
	Loading
	Available
)

func (s Status) String() string {
	switch s {
	case Loading:
		return "loading"
	case Available:
		return "available"
	default:
		return "unavailable"
	}
}

// Raw is a feed value exactly as the runtime supplies it.
type Raw[T any] struct {
	Status  Status
	Value   T
	Present bool // false when the runtime sent no payload
}

func AvailableRaw[T any](value T) Raw[T] {
	return Raw[T]{Status: Available, Value: value, Present: true}
}

func LoadingRaw[T any]() Raw[T] {
	return Raw[T]{Status: Loading}
}

func UnavailableRaw[T any]() Raw[T] {
	return Raw[T]{Status: Unavailable}
}

// State is the normalized view of one feed. A loading state keeps the last
// available value so a refresh never flashes an empty widget.
type State[T any] struct {
	kind     Status
	value    T
	hasValue bool
}

func (s State[T]) Kind() Status { return s.kind }

func (s State[T]) IsAvailable() bool { return s.kind == Available }

func (s State[T]) IsLoading() bool { return s.kind == Loading }

// Value returns the current value, or the last known one while loading.
func (s State[T]) Value() (T, bool) {
	return s.value, s.hasValue
}

// Normalize maps a raw runtime value onto the next state. It is pure and
// idempotent: applying the same raw value twice yields the same state.
func Normalize[T any](prev State[T], raw Raw[T]) State[T] {
	switch raw.Status {
	case Loading:
		return State[T]{kind: Loading, value: prev.value, hasValue: prev.hasValue}
	case Available:
		if !raw.Present {
			return State[T]{kind: Unavailable}
		}
		return State[T]{kind: Available, value: raw.Value, hasValue: true}
	default:
		return State[T]{kind: Unavailable}
	}
}

// Normalizer holds the normalized state of a single feed.
type Normalizer[T any] struct {
	state         State[T]
	everAvailable bool
}

// Apply normalizes raw against the previous state and reports whether the
// result is a fresh available value.
func (n *Normalizer[T]) Apply(raw Raw[T]) (State[T], bool) {
	n.state = Normalize(n.state, raw)
	if n.state.IsAvailable() {
		n.everAvailable = true
		return n.state, true
	}
	return n.state, false
}

func (n Normalizer[T]) State() State[T] { return n.state }

// Reached reports whether the feed has been available at least once.
func (n Normalizer[T]) Reached() bool { return n.everAvailable }
