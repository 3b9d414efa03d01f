package ast

import (
	"fmt"

	"github.com/fatih/color"
)

// Colors maps render roles to sprintf-style colorizers.
type Colors struct {
	Key    func(string, ...any) string
	Scalar func(string, ...any) string
	Sep    func(string, ...any) string
	Marker func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Key:    color.RGB(196, 96, 16).SprintfFunc(),
		Scalar: color.RGB(128, 216, 236).SprintfFunc(),
		Sep:    color.RGB(255, 0, 196).SprintfFunc(),
		Marker: color.BlueString,
	}
}

func plainColors() *Colors {
	return &Colors{
		Key:    fmt.Sprintf,
		Scalar: fmt.Sprintf,
		Sep:    fmt.Sprintf,
		Marker: fmt.Sprintf,
	}
}
