package model

// TagWorld is the tag reported for static level geometry.
const TagWorld = "World"

// Hit is the result of a ray cast that found a collider.
type Hit struct {
	Point    Vec3
	Distance float64
	Tag      string
	Body     Handle // zero for static geometry
}

// HasTag reports whether the hit collider carries tag.
func (h Hit) HasTag(tag string) bool {
	return h.Tag == tag
}
