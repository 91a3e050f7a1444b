package conversation

// Turn is one utterance in a conversation, either from the user or from
// the assistant.
type Turn struct {
	IsUser bool
	Text   string
}

// NoProduct is the sentinel for "no product selected yet".
const NoProduct = -1

// Log is the state of one linear conversation: an append-only ordered list
// of turns plus a pointer to the last product the conversation settled on.
// A Log is not safe for concurrent use; the hosting layer must serialize
// access (one query in flight per conversation).
type Log struct {
	turns       []Turn
	lastProduct int
}

func NewLog() *Log {
	return &Log{lastProduct: NoProduct}
}

func (l *Log) AppendUser(text string) {
	l.turns = append(l.turns, Turn{IsUser: true, Text: text})
}

func (l *Log) AppendAssistant(text string) {
	l.turns = append(l.turns, Turn{IsUser: false, Text: text})
}

// Recent returns the last n turns in conversational order (oldest first).
// Returns fewer than n when the log is shorter. The returned slice is a
// copy; mutating it does not affect the log.
func (l *Log) Recent(n int) []Turn {
	if n <= 0 || len(l.turns) == 0 {
		return nil
	}
	start := len(l.turns) - n
	if start < 0 {
		start = 0
	}
	out := make([]Turn, len(l.turns)-start)
	copy(out, l.turns[start:])
	return out
}

func (l *Log) Len() int {
	return len(l.turns)
}

// LastProduct returns the catalog index of the most recently matched
// product, or NoProduct if no query has matched yet. The pointer is
// monotonic: it is only overwritten by a newer successful match, never
// cleared by unmatched queries.
func (l *Log) LastProduct() int {
	return l.lastProduct
}

func (l *Log) SetLastProduct(i int) {
	l.lastProduct = i
}
