// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package content

import "github.com/bureau-foundation/statewire/lib/ref"

// AvatarContent is the payload of a TypeRoomAvatar state event: the
// room's avatar image.
type AvatarContent struct {
	// Info holds metadata about the image referenced by URL. Nil when
	// the server provided none.
	Info *ImageInfo `json:"info,omitempty"`

	// URL is where the avatar image can be fetched (typically an
	// mxc:// content URI).
	URL string `json:"url"`
}

// EventType returns TypeRoomAvatar.
func (AvatarContent) EventType() ref.EventType { return TypeRoomAvatar }

// ImageInfo describes an image: dimensions, MIME type, byte size, and
// an optional thumbnail.
type ImageInfo struct {
	// Height is the intended display height in pixels.
	Height int64 `json:"h,omitempty"`

	// Width is the intended display width in pixels.
	Width int64 `json:"w,omitempty"`

	// MimeType is the image's MIME type (e.g., "image/png").
	MimeType string `json:"mimetype,omitempty"`

	// Size is the image file size in bytes.
	Size int64 `json:"size,omitempty"`

	// ThumbnailInfo describes the thumbnail referenced by ThumbnailURL.
	ThumbnailInfo *ThumbnailInfo `json:"thumbnail_info,omitempty"`

	// ThumbnailURL is where a thumbnail of the image can be fetched.
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

// ThumbnailInfo describes a thumbnail image.
type ThumbnailInfo struct {
	// Height is the thumbnail height in pixels.
	Height int64 `json:"h,omitempty"`

	// Width is the thumbnail width in pixels.
	Width int64 `json:"w,omitempty"`

	// MimeType is the thumbnail's MIME type.
	MimeType string `json:"mimetype,omitempty"`

	// Size is the thumbnail file size in bytes.
	Size int64 `json:"size,omitempty"`
}
