package io

import (
	"strconv"

	cerrors "github.com/matzehuels/castcolor/pkg/errors"
)

// numbers walks the digit runs of an input in order.
type numbers struct {
	src []byte
	pos int
}

func newNumbers(src []byte) *numbers {
	return &numbers{src: src}
}

// next returns the next number. Running out of input yields an error naming
// field.
func (n *numbers) next(field string) (int, error) {
	for n.pos < len(n.src) && !isDigit(n.src[n.pos]) {
		n.pos++
	}
	if n.pos == len(n.src) {
		return 0, cerrors.Missing(field)
	}
	start := n.pos
	for n.pos < len(n.src) && isDigit(n.src[n.pos]) {
		n.pos++
	}
	v, err := strconv.Atoi(string(n.src[start:n.pos]))
	if err != nil {
		return 0, cerrors.Wrap(cerrors.ErrCodeInvalidInput, err, "%s too large", field)
	}
	return v, nil
}

// id reads a 1-indexed id and returns it 0-indexed. limit bounds the id when
// positive.
func (n *numbers) id(field, kind string, limit int) (int, error) {
	v, err := n.next(field)
	if err != nil {
		return 0, err
	}
	if err := cerrors.ValidateID(kind, v, limit); err != nil {
		return 0, cerrors.New(cerrors.ErrCodeInvalidInput, "%s: %s", field, cerrors.UserMessage(err))
	}
	return v - 1, nil
}

// group reads "<count> <id>..." and returns the ids 0-indexed.
func (n *numbers) group(label, kind string, limit int) ([]int, error) {
	count, err := n.next(label + " " + kind + " count")
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, min(count, len(n.src)))
	for i := 0; i < count; i++ {
		id, err := n.id(label+" "+kind+" "+strconv.Itoa(i+1), kind, limit)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
