package parcel

// Patch carries an optional metadata update applied alongside a status
// change. Nil fields are left untouched; non-nil fields replace the current
// value.
type Patch struct {
	Weight               *float64
	DeclaredValue        *float64
	PhotoURLs            []string
	InternalTrackingCode *string
}

// IsEmpty reports whether the patch carries no changes.
func (p Patch) IsEmpty() bool {
	return p.Weight == nil &&
		p.DeclaredValue == nil &&
		p.PhotoURLs == nil &&
		p.InternalTrackingCode == nil
}
