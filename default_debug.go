// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build expectdebug

package expect

// Debug reports whether the package was built with the expectdebug tag.
const Debug = true

// DefaultGlobalHandler returns the handler [New] installs when given nil.
// Debug builds panic on the first failure.
func DefaultGlobalHandler() GlobalHandler {
	return Panic()
}
