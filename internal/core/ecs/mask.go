package ecs

// Mask is a fixed 32-bit membership bitset. One instance tracks component
// presence per entity, another tracks group membership.
type Mask uint32

func (m *Mask) Set(bit int) {
	*m |= 1 << uint(bit)
}

func (m *Mask) Clear(bit int) {
	*m &^= 1 << uint(bit)
}

func (m Mask) Test(bit int) bool {
	return m&(1<<uint(bit)) != 0
}
