package tuxobj

import (
	"fmt"
)

func validateObject(obj *Object, cfg writeConfig) error {
	if obj == nil {
		return fmt.Errorf("%w: object is nil", ErrInvalidObject)
	}
	if len(obj.Metadata) > int(cfg.limits.MaxMetadataLen) {
		return fmt.Errorf("%w: metadata is %d bytes", ErrLimitExceeded, len(obj.Metadata))
	}
	if cfg.tagsPadding < 0 {
		return fmt.Errorf("%w: negative tags padding %d", ErrInvalidObject, cfg.tagsPadding)
	}
	if !cfg.compression.Type.valid() {
		return fmt.Errorf("%w %d", ErrInvalidCompression, uint8(cfg.compression.Type))
	}
	if obj.Tags.Len() > MaxLen {
		return &TooLargeError{Len: obj.Tags.Len()}
	}
	return nil
}

// validateTagsEnd checks that decoding the tags did not run into the
// content section.
func validateTagsEnd(h ObjectHeader, end int64) error {
	if end > int64(h.ContentStart) {
		return fmt.Errorf("%w: tags end at %d past content start %d", ErrInvalidHeader, end, h.ContentStart)
	}
	return nil
}

// validateLimits checks a decoded header against the reader's limits before
// anything is allocated from it.
func validateLimits(h ObjectHeader, limits Limits) error {
	if meta := int64(h.TagsStart) - HeaderSize; meta > int64(limits.MaxMetadataLen) {
		return fmt.Errorf("%w: metadata length %d", ErrLimitExceeded, meta)
	}
	if h.ContentLength > limits.MaxContentLen {
		return fmt.Errorf("%w: content length %d", ErrLimitExceeded, h.ContentLength)
	}
	return nil
}
