package models

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ItemName is the display name of a purchase, e.g. "Classic Flap".
//
// A valid name is 1 to 255 characters, has no surrounding whitespace, no
// control characters (tabs and newlines included) and no runs of spaces.
type ItemName string

const maxItemNameLength = 255

// NewItemName trims s and returns it as an ItemName, or the first rule it
// breaks.
func NewItemName(s string) (ItemName, error) {
	n := ItemName(strings.TrimSpace(s))
	if err := n.Validate(); err != nil {
		return "", err
	}
	return n, nil
}

// Validate reports whether n satisfies the naming rules. Names built with
// NewItemName always do; names read back from storage are checked here.
func (n ItemName) Validate() error {
	s := string(n)
	switch {
	case s == "":
		return errors.New("item name must not be empty")
	case utf8.RuneCountInString(s) > maxItemNameLength:
		return fmt.Errorf("item name must not exceed %d characters", maxItemNameLength)
	case s != strings.TrimSpace(s):
		return errors.New("item name must not have leading or trailing whitespace")
	case strings.IndexFunc(s, unicode.IsControl) >= 0:
		return errors.New("item name must not contain control characters")
	case strings.Contains(s, "  "):
		return errors.New("item name must not contain consecutive spaces")
	}
	return nil
}

// String returns the underlying string value.
func (n ItemName) String() string {
	return string(n)
}
