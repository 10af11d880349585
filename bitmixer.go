package fsa

// Golden ratio constant used to spread set sizes before mixing in members.
const phiC64 = uint64(0x9e3779b97f4a7c15)

// mix32 is the 32-bit finalization step of MurmurHash3.
func mix32(v int) uint64 {
	k := uint32(v)
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return uint64(k ^ (k >> 16))
}

// hashStates combines members with addition so the result does not depend on
// the order the members were inserted in.
func hashStates(size int, members func(yield func(int) bool)) uint64 {
	h := uint64(size) * phiC64
	members(func(state int) bool {
		h += mix32(state)
		return true
	})
	return h
}
