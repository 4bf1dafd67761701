package chimera

// Cloner allows types to provide deep copy logic.
// Implementing this interface is required for use with Processor.
//
// Marshal encodes fields on a clone so the caller's value is never modified.
// For types containing pointers, slices, or maps, ensure these are also
// copied:
//
//	func (n Note) Clone() Note {
//	    tags := make([]string, len(n.Tags))
//	    copy(tags, n.Tags)
//	    return Note{ID: n.ID, Body: n.Body, Tags: tags}
//	}
type Cloner[T any] interface {
	Clone() T
}
