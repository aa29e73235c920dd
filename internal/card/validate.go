package card

import (
	"fmt"
	"unicode/utf8"
)

const (
	maxTitleLen = 120
	maxNotesLen = 2000
	maxTagLen   = 40
)

func validateTitle(title string) error {
	n := utf8.RuneCountInString(title)
	if n < 1 || n > maxTitleLen {
		return fmt.Errorf("%w: title must be 1-%d characters", ErrInvalid, maxTitleLen)
	}
	return nil
}

func validateNotes(notes *string) error {
	if notes != nil && utf8.RuneCountInString(*notes) > maxNotesLen {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalid, maxNotesLen)
	}
	return nil
}

func validateTag(tag *string) error {
	if tag != nil && utf8.RuneCountInString(*tag) > maxTagLen {
		return fmt.Errorf("%w: tag must be at most %d characters", ErrInvalid, maxTagLen)
	}
	return nil
}
