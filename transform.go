package chimera

import (
	"slices"
)

// Env is the per-occurrence state handed to a Transform.
type Env struct {
	Alphabet *Alphabet // Alphabet governing index arithmetic
	Shift    int       // Pattern shift, shared by every SelectorShift occurrence
	Selector Selector  // Literal selector being applied
}

// Transform is a reversible text transform.
// Inverse(Forward(t, env), env) must equal t for every alphabet-restricted t.
// Implementations return a new slice and never modify text.
type Transform interface {
	// Forward applies the transform while encoding.
	Forward(text []rune, env Env) []rune

	// Inverse undoes Forward while decoding.
	Inverse(text []rune, env Env) []rune
}

// reverseTransform reverses symbol order. Self-inverse.
type reverseTransform struct{}

// Reverse returns the symbol-order reversing transform.
func Reverse() Transform {
	return &reverseTransform{}
}

func (t *reverseTransform) Forward(text []rune, _ Env) []rune {
	out := slices.Clone(text)
	slices.Reverse(out)
	return out
}

func (t *reverseTransform) Inverse(text []rune, env Env) []rune {
	return t.Forward(text, env)
}

// rot13Transform rotates A-Z by 13 regardless of the alphabet. Self-inverse.
type rot13Transform struct{}

// ROT13 returns the Latin-letter rotation transform.
// Lower-case ASCII letters are folded to upper-case; all other runes pass through.
func ROT13() Transform {
	return &rot13Transform{}
}

func (t *rot13Transform) Forward(text []rune, _ Env) []rune {
	out := make([]rune, len(text))
	for i, r := range text {
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		if r >= 'A' && r <= 'Z' {
			r = 'A' + (r-'A'+13)%26
		}
		out[i] = r
	}
	return out
}

func (t *rot13Transform) Inverse(text []rune, env Env) []rune {
	return t.Forward(text, env)
}

// shiftTransform shifts alphabet members by the pattern shift.
type shiftTransform struct{}

// Shift returns the transform driven by the pattern's numeric shift.
func Shift() Transform {
	return &shiftTransform{}
}

func (t *shiftTransform) Forward(text []rune, env Env) []rune {
	return shiftRunes(text, env.Alphabet, env.Shift)
}

func (t *shiftTransform) Inverse(text []rune, env Env) []rune {
	return shiftRunes(text, env.Alphabet, -env.Shift)
}

// fixedShiftTransform encodes with -FixedShift and decodes with +FixedShift.
type fixedShiftTransform struct{}

// FixedShiftBack returns the transform that shifts backward by FixedShift on encode.
func FixedShiftBack() Transform {
	return &fixedShiftTransform{}
}

func (t *fixedShiftTransform) Forward(text []rune, env Env) []rune {
	return shiftRunes(text, env.Alphabet, -FixedShift)
}

func (t *fixedShiftTransform) Inverse(text []rune, env Env) []rune {
	return shiftRunes(text, env.Alphabet, FixedShift)
}

// swapHalvesTransform swaps halves; the split points differ so odd lengths invert.
type swapHalvesTransform struct{}

// SwapHalves returns the half-swapping transform.
func SwapHalves() Transform {
	return &swapHalvesTransform{}
}

func (t *swapHalvesTransform) Forward(text []rune, _ Env) []rune {
	return rotate(text, (len(text)+1)/2)
}

func (t *swapHalvesTransform) Inverse(text []rune, _ Env) []rune {
	return rotate(text, len(text)/2)
}

// rotateRightTransform moves the last symbol to the front.
type rotateRightTransform struct{}

// RotateRight returns the one-position right rotation.
func RotateRight() Transform {
	return &rotateRightTransform{}
}

func (t *rotateRightTransform) Forward(text []rune, _ Env) []rune {
	if len(text) == 0 {
		return []rune{}
	}
	return rotate(text, len(text)-1)
}

func (t *rotateRightTransform) Inverse(text []rune, _ Env) []rune {
	if len(text) == 0 {
		return []rune{}
	}
	return rotate(text, 1)
}

// rotateLeftTransform moves the first two symbols to the back.
type rotateLeftTransform struct{}

// RotateLeft returns the two-position left rotation.
// Texts shorter than two symbols are returned unchanged.
func RotateLeft() Transform {
	return &rotateLeftTransform{}
}

func (t *rotateLeftTransform) Forward(text []rune, _ Env) []rune {
	if len(text) < 2 {
		return slices.Clone(text)
	}
	return rotate(text, 2)
}

func (t *rotateLeftTransform) Inverse(text []rune, _ Env) []rune {
	if len(text) < 2 {
		return slices.Clone(text)
	}
	return rotate(text, len(text)-2)
}

// atbashTransform mirrors alphabet positions. Self-inverse.
type atbashTransform struct{}

// Atbash returns the alphabet-mirroring transform.
func Atbash() Transform {
	return &atbashTransform{}
}

func (t *atbashTransform) Forward(text []rune, env Env) []rune {
	a := env.Alphabet
	out := make([]rune, len(text))
	for i, r := range text {
		idx := a.Index(r)
		if idx < 0 {
			out[i] = r
			continue
		}
		out[i] = a.Char(a.Size() - 1 - idx)
	}
	return out
}

func (t *atbashTransform) Inverse(text []rune, env Env) []rune {
	return t.Forward(text, env)
}

// charShiftTransform shifts by the alphabet position of the selector rune.
type charShiftTransform struct{}

// CharShift returns the transform keyed by its own selector character.
// A selector outside the alphabet makes it a no-op.
func CharShift() Transform {
	return &charShiftTransform{}
}

func (t *charShiftTransform) Forward(text []rune, env Env) []rune {
	n := env.Alphabet.Index(rune(env.Selector))
	if n < 0 {
		return slices.Clone(text)
	}
	return shiftRunes(text, env.Alphabet, n)
}

func (t *charShiftTransform) Inverse(text []rune, env Env) []rune {
	n := env.Alphabet.Index(rune(env.Selector))
	if n < 0 {
		return slices.Clone(text)
	}
	return shiftRunes(text, env.Alphabet, -n)
}

// identityTransform leaves text unchanged.
type identityTransform struct{}

// Identity returns the transform applied for unregistered selectors.
func Identity() Transform {
	return &identityTransform{}
}

func (t *identityTransform) Forward(text []rune, _ Env) []rune {
	return slices.Clone(text)
}

func (t *identityTransform) Inverse(text []rune, _ Env) []rune {
	return slices.Clone(text)
}

// shiftRunes moves every alphabet member n positions; non-members pass through.
func shiftRunes(text []rune, a *Alphabet, n int) []rune {
	out := make([]rune, len(text))
	for i, r := range text {
		idx := a.Index(r)
		if idx < 0 {
			out[i] = r
			continue
		}
		out[i] = a.Char(idx + n)
	}
	return out
}

// rotate returns text[k:] followed by text[:k].
func rotate(text []rune, k int) []rune {
	out := make([]rune, 0, len(text))
	out = append(out, text[k:]...)
	return append(out, text[:k]...)
}

// builtinTransforms returns the default transform registry.
func builtinTransforms() map[Selector]Transform {
	return map[Selector]Transform{
		SelectorReverse:     Reverse(),
		SelectorROT13:       ROT13(),
		SelectorShift:       Shift(),
		SelectorFixedShift:  FixedShiftBack(),
		SelectorSwapHalves:  SwapHalves(),
		SelectorRotateRight: RotateRight(),
		SelectorRotateLeft:  RotateLeft(),
		SelectorAtbash:      Atbash(),
		SelectorCharShift:   CharShift(),
	}
}

// Transforms returns a copy of the builtin registry keyed by selector.
func Transforms() map[Selector]Transform {
	return builtinTransforms()
}
