package carousel

// Key is an abstract navigation key delivered by a keyboard adapter.
type Key int

const (
	KeyAdvance Key = iota + 1
	KeyRetreat
)

// HandleKey maps KeyAdvance to Next and KeyRetreat to Prev when keyboard
// navigation is enabled. It reports whether the key was acted upon.
func (e *Engine) HandleKey(k Key) bool {
	if !e.keyboard {
		return false
	}
	switch k {
	case KeyAdvance:
		e.Next()
	case KeyRetreat:
		e.Prev()
	default:
		return false
	}
	return true
}
