package eventcodec

// Coalesce returns def when v is the zero value of T - otherwise v.
// Shared by the codec packages for option defaulting.
func Coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
