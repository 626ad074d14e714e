// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !expectdebug

package expect

// Debug reports whether the package was built with the expectdebug tag.
const Debug = false

// DefaultGlobalHandler returns the handler [New] installs when given nil.
// Release builds observe failures and proceed.
func DefaultGlobalHandler() GlobalHandler {
	return Continue()
}
