package model

import (
	"fmt"
	"strings"
)

type Color string

const (
	ColorRed   Color = "red"
	ColorGreen Color = "green"
	ColorBlue  Color = "blue"
)

func (c Color) String() string {
	return string(c)
}

func (c Color) IsValid() bool {
	switch c {
	case ColorRed, ColorGreen, ColorBlue:
		return true
	default:
		return false
	}
}

func ParseColor(s string) (Color, error) {
	color := Color(strings.ToLower(strings.TrimSpace(s)))
	if !color.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrInvalidColor, s)
	}

	return color, nil
}

func AllColors() []Color {
	return []Color{ColorRed, ColorGreen, ColorBlue}
}

type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

func (s Size) String() string {
	return string(s)
}

func (s Size) IsValid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	default:
		return false
	}
}

func ParseSize(s string) (Size, error) {
	size := Size(strings.ToLower(strings.TrimSpace(s)))
	if !size.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrInvalidSize, s)
	}

	return size, nil
}

func AllSizes() []Size {
	return []Size{SizeSmall, SizeMedium, SizeLarge}
}
