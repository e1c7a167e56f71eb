// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"github.com/bureau-foundation/matrix-event/lib/jsint"
)

// ImageInfo describes an image referenced by mxc URL. All dimension
// and size fields are optional; servers and clients routinely omit
// the ones they did not compute.
type ImageInfo struct {
	Height        *jsint.UInt    `json:"h,omitempty"`
	MimeType      string         `json:"mimetype,omitempty"`
	Size          *jsint.UInt    `json:"size,omitempty"`
	ThumbnailInfo *ThumbnailInfo `json:"thumbnail_info,omitempty"`
	ThumbnailURL  string         `json:"thumbnail_url,omitempty"`
	Width         *jsint.UInt    `json:"w,omitempty"`
}

// ThumbnailInfo describes a thumbnail of an attachment.
type ThumbnailInfo struct {
	Height   *jsint.UInt `json:"h,omitempty"`
	MimeType string      `json:"mimetype,omitempty"`
	Size     *jsint.UInt `json:"size,omitempty"`
	Width    *jsint.UInt `json:"w,omitempty"`
}
