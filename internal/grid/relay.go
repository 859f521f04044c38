package grid

// WordHandler receives a completed word for the active row.
type WordHandler func(word string)

// WordChangedMsg carries a completed word from the editable row into the grid.
type WordChangedMsg struct {
	Word string
}

// Relay forwards completed words to the owner. It does not validate,
// trim or retry; a nil OnWord drops the word.
type Relay struct {
	OnWord WordHandler
}

func (r Relay) Forward(msg WordChangedMsg) {
	if r.OnWord == nil {
		return
	}
	r.OnWord(msg.Word)
}
