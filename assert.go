// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !debug

package ownref

// assertLive verifies a view's backing cell has not been destroyed
// (debug builds only).
func (c *cell[T]) assertLive() {}
