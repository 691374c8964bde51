package lexicon

import "errors"

var (
	ErrEmptyCategoryName = errors.New("lexicon: category name is empty")
	ErrDuplicateCategory = errors.New("lexicon: duplicate category name")
	ErrEmptyCategory     = errors.New("lexicon: category has no keywords")
	ErrBlankTerm         = errors.New("lexicon: blank term")
)
