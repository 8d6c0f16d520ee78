// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import "strconv"

// Show is the textual-representation capability instance for a zero-hole
// shape. It is the canonical dependent capability: Show for a container
// shape applied to T requires Show for T, supplied explicitly at
// construction time and held by reference for the instance's lifetime.
type Show struct {
	shape Shape
	show  func(v Erased) string
}

// NewShow creates a Show instance from an erased rendering body.
func NewShow(shape Shape, show func(v Erased) string) *Show {
	return &Show{shape: shape, show: show}
}

// ShowOf creates a Show instance from a typed rendering function.
func ShowOf[A any](shape Shape, show func(A) string) *Show {
	return NewShow(shape, func(v Erased) string { return show(v.(A)) })
}

// Show renders a value of the instance's shape.
func (s *Show) Show(v Erased) string { return s.show(v) }

// Capability implements Instance.
func (s *Show) Capability() Capability { return ShowCap }

// Shape implements Instance.
func (s *Show) Shape() Shape { return s.shape }

// IntShow is the Show instance for Int.
func IntShow() *Show {
	return ShowOf(IntShape, strconv.Itoa)
}

// StringShow is the Show instance for String. Values are quoted so the
// rendering round-trips through container renderings unambiguously.
func StringShow() *Show {
	return ShowOf(StringShape, strconv.Quote)
}

// BoolShow is the Show instance for Bool.
func BoolShow() *Show {
	return ShowOf(BoolShape, strconv.FormatBool)
}
