// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prettify

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'prettify'.
func tracer() tracing.Trace {
	return tracing.Select("prettify")
}
