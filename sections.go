package tuxobj

import (
	"fmt"
	"io"
)

// Section is one of the four regions of an encoded object, in file order.
type Section uint8

const (
	SectionHeader Section = iota
	// SectionMetadata always starts at HeaderSize. Its contents are
	// application-defined.
	SectionMetadata
	SectionTags
	SectionContent
)

func (s Section) String() string {
	switch s {
	case SectionHeader:
		return "header"
	case SectionMetadata:
		return "metadata"
	case SectionTags:
		return "tags"
	case SectionContent:
		return "content"
	default:
		return fmt.Sprintf("section(%d)", uint8(s))
	}
}

// Offset returns the absolute offset of section.
func (h ObjectHeader) Offset(section Section) (int64, error) {
	switch section {
	case SectionHeader:
		return 0, nil
	case SectionMetadata:
		return HeaderSize, nil
	case SectionTags:
		return int64(h.TagsStart), nil
	case SectionContent:
		return int64(h.ContentStart), nil
	default:
		return 0, fmt.Errorf("tuxobj: unknown %v", section)
	}
}

// Len returns the length in bytes of section. The tags length includes
// any reserved padding before the content.
func (h ObjectHeader) Len(section Section) (int64, error) {
	switch section {
	case SectionHeader:
		return HeaderSize, nil
	case SectionMetadata:
		return int64(h.TagsStart) - HeaderSize, nil
	case SectionTags:
		return int64(h.TagsSpace()), nil
	case SectionContent:
		return int64(h.ContentLength), nil
	default:
		return 0, fmt.Errorf("tuxobj: unknown %v", section)
	}
}

// SeekToSectionWithHeader positions s at section as laid out by h.
func SeekToSectionWithHeader(s io.Seeker, section Section, h ObjectHeader) error {
	off, err := h.Offset(section)
	if err != nil {
		return err
	}
	_, err = s.Seek(off, io.SeekStart)
	return err
}

// SeekToSection positions rs at section. For the tags and content sections
// the header is first read from offset 0.
func SeekToSection(rs io.ReadSeeker, section Section) error {
	switch section {
	case SectionHeader, SectionMetadata:
		return SeekToSectionWithHeader(rs, section, ObjectHeader{})
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return err
	}
	h, err := ReadHeader(rs)
	if err != nil {
		return err
	}
	return SeekToSectionWithHeader(rs, section, h)
}
