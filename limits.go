package tuxobj

// Limits bounds what Encode accepts and what a Reader will allocate.
// Zero fields take their defaults.
type Limits struct {
	MaxMetadataLen         uint32
	MaxContentLen          uint64 // stored (possibly compressed) content length
	MaxContentUncompressed uint64 // content length after decompression
}

// maxMetadataLen is the most metadata that fits before a 16-bit tags offset.
const maxMetadataLen = MaxLen - HeaderSize

func defaultLimits() Limits {
	return Limits{
		MaxMetadataLen:         maxMetadataLen,
		MaxContentLen:          1 << 32,   // 4 GiB stored content cap
		MaxContentUncompressed: 256 << 20, // 256 MiB
	}
}

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxMetadataLen == 0 || l.MaxMetadataLen > d.MaxMetadataLen {
		l.MaxMetadataLen = d.MaxMetadataLen
	}
	if l.MaxContentLen == 0 {
		l.MaxContentLen = d.MaxContentLen
	}
	if l.MaxContentUncompressed == 0 {
		l.MaxContentUncompressed = d.MaxContentUncompressed
	}
	return l
}
