package chimera

// Selector is a single pattern character naming a transform.
// Selectors are upper-case; pattern parsing folds lower-case input.
type Selector rune

const (
	// SelectorReverse reverses symbol order.
	SelectorReverse Selector = 'A'

	// SelectorROT13 rotates ASCII letters A-Z by 13, ignoring the alphabet.
	SelectorROT13 Selector = 'B'

	// SelectorShift shifts alphabet members forward by the pattern's shift.
	SelectorShift Selector = 'C'

	// SelectorFixedShift shifts alphabet members backward by FixedShift on encode.
	SelectorFixedShift Selector = 'D'

	// SelectorSwapHalves swaps the two halves of the text.
	SelectorSwapHalves Selector = 'E'

	// SelectorRotateRight moves the last symbol to the front.
	SelectorRotateRight Selector = 'H'

	// SelectorRotateLeft moves the first two symbols to the back.
	SelectorRotateLeft Selector = 'I'

	// SelectorAtbash mirrors each symbol's alphabet position.
	SelectorAtbash Selector = 'J'

	// SelectorCharShift shifts by the alphabet position of the selector itself.
	SelectorCharShift Selector = 'S'
)

const (
	// DefaultShift applies when a pattern carries no trailing digits.
	DefaultShift = 5

	// FixedShift is the magnitude used by SelectorFixedShift.
	FixedShift = 5
)

// knownSelectors contains every selector with a builtin transform.
var knownSelectors = map[Selector]bool{
	SelectorReverse:     true,
	SelectorROT13:       true,
	SelectorShift:       true,
	SelectorFixedShift:  true,
	SelectorSwapHalves:  true,
	SelectorRotateRight: true,
	SelectorRotateLeft:  true,
	SelectorAtbash:      true,
	SelectorCharShift:   true,
}

// IsKnownSelector returns true if s has a builtin transform.
// Unknown selectors are still valid in patterns; they apply Identity.
func IsKnownSelector(s Selector) bool {
	return knownSelectors[s]
}

// String returns the selector character.
func (s Selector) String() string {
	return string(rune(s))
}
