// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// Handle owns one GPU object allocated by a [Backend], and
// releases it exactly once. The zero Handle owns nothing.
type Handle struct {
	id      uint32
	release func(id uint32)
}

// NewHandle returns a handle owning the object with the given id,
// released by calling release.
func NewHandle(id uint32, release func(id uint32)) Handle {
	return Handle{id: id, release: release}
}

// Valid returns whether the handle owns an object.
func (h *Handle) Valid() bool {
	return h.release != nil
}

// ID returns the backend id of the object, or 0 if not valid.
func (h *Handle) ID() uint32 {
	return h.id
}

// Release releases the object if the handle owns one,
// and leaves the handle empty. It is safe to call repeatedly.
func (h *Handle) Release() {
	if h.release == nil {
		return
	}
	h.release(h.id)
	*h = Handle{}
}
