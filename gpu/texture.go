// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"

	"cogentcore.org/grapher3d/math32"
)

// ImageTexture is a 2D RGBA texture sampled with linear filtering,
// trilinear when it has mipmaps.
type ImageTexture struct {

	// ID is the GL texture object.
	ID TextureID

	// Width and Height are the size of the last uploaded image.
	Width, Height int

	// Mipmapped is whether mipmaps were generated for the last image.
	Mipmapped bool

	ctx Context
}

// NewImageTexture returns a texture with no GL object yet.
func NewImageTexture(ctx Context) *ImageTexture {
	return &ImageTexture{ctx: ctx}
}

// SetImage uploads img, replacing any previous contents. Mipmaps are
// generated unless the context is WebGL 1 and the image is not a power
// of two in both dimensions, in which case the wrap mode is clamped to
// the edge, which WebGL 1 requires for such textures.
func (tx *ImageTexture) SetImage(img *image.RGBA) {
	if tx.ID.IsNil() {
		tx.ID = tx.ctx.CreateTexture()
	}
	sz := img.Bounds().Size()
	tx.Width, tx.Height = sz.X, sz.Y
	tx.ctx.BindTexture(Texture2D, tx.ID)
	tx.ctx.TexImage2D(Texture2D, img)

	tx.Mipmapped = !tx.ctx.Legacy() || (math32.IsPowerOf2(sz.X) && math32.IsPowerOf2(sz.Y))
	minFilter := Linear
	if tx.Mipmapped {
		tx.ctx.GenerateMipmap(Texture2D)
		minFilter = LinearMipmapLinear
	} else {
		tx.ctx.TexParameteri(Texture2D, TextureWrapS, ClampToEdge)
		tx.ctx.TexParameteri(Texture2D, TextureWrapT, ClampToEdge)
	}
	tx.ctx.TexParameteri(Texture2D, TextureMinFilter, minFilter)
	tx.ctx.TexParameteri(Texture2D, TextureMagFilter, Linear)
}

// Bind binds the texture to the given texture unit.
func (tx *ImageTexture) Bind(unit int) {
	tx.ctx.ActiveTexture(Texture0 + Enum(unit))
	tx.ctx.BindTexture(Texture2D, tx.ID)
}

// Release deletes the GL texture.
func (tx *ImageTexture) Release() {
	if tx.ID.IsNil() {
		return
	}
	tx.ctx.DeleteTexture(tx.ID)
	tx.ID = TextureID{}
}
