// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stimset

import (
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"github.com/emer/etable/etensor"
	"github.com/emer/stims/stim"
)

// GridTensor renders all stimuli and composes them into one 2D tensor
// laid out as a row-major grid with the given number of columns and
// padding (in pixels) between and around cells.  cols <= 0 picks a
// roughly square layout.  Cell order matches bank order.
func (bk *Bank) GridTensor(cols, pad int) (*etensor.Float32, error) {
	idxs := make([]int, len(bk.Stims))
	for i := range idxs {
		idxs[i] = i
	}
	return bk.GridTensorIdxs(idxs, cols, pad)
}

// SubclassGrid composes the grid of just the given subclass.
func (bk *Bank) SubclassGrid(subclass string, cols, pad int) (*etensor.Float32, error) {
	return bk.GridTensorIdxs(bk.SubclassStims(subclass), cols, pad)
}

// GridTensorIdxs composes the grid of the stimuli at the given
// indexes.
func (bk *Bank) GridTensorIdxs(idxs []int, cols, pad int) (*etensor.Float32, error) {
	if err := bk.Validate(); err != nil {
		return nil, err
	}
	gt := &etensor.Float32{}
	n := len(idxs)
	if n == 0 {
		gt.SetShape([]int{0, 0}, nil, []string{"Y", "X"})
		return gt, nil
	}
	if cols <= 0 {
		cols = int(math.Ceil(math.Sqrt(float64(n))))
	}
	rows := (n + cols - 1) / cols
	sz := bk.Sheet.PixSize()
	gw := cols*sz.X + (cols+1)*pad
	gh := rows*sz.Y + (rows+1)*pad
	gt.SetShape([]int{gh, gw}, nil, []string{"Y", "X"})
	tsr := &etensor.Float32{}
	for ci, si := range idxs {
		if err := stim.Render(bk.Stims[si].Pat, bk.Sheet, tsr); err != nil {
			return nil, err
		}
		gy := (ci/cols)*(sz.Y+pad) + pad
		gx := (ci%cols)*(sz.X+pad) + pad
		for y := 0; y < sz.Y; y++ {
			for x := 0; x < sz.X; x++ {
				gt.Set([]int{gy + y, gx + x}, tsr.Value([]int{y, x}))
			}
		}
	}
	return gt, nil
}

// GridImage converts a grid tensor to a grayscale image, clamping
// values to 0..1, upscaled by the given integer factor using nearest
// neighbor so pixels stay crisp.
func GridImage(tsr *etensor.Float32, scale int) image.Image {
	sy := tsr.Dim(0)
	sx := tsr.Dim(1)
	img := image.NewGray(image.Rect(0, 0, sx, sy))
	for y := 0; y < sy; y++ {
		for x := 0; x < sx; x++ {
			v := tsr.Value([]int{y, x})
			if v < 0 {
				v = 0
			} else if v > 1 {
				v = 1
			}
			img.SetGray(x, y, color.Gray{Y: uint8(v*255 + 0.5)})
		}
	}
	if scale > 1 {
		return transform.Resize(img, sx*scale, sy*scale, transform.NearestNeighbor)
	}
	return img
}

// GridImage renders the full bank grid as a grayscale image.
func (bk *Bank) GridImage(cols, pad, scale int) (image.Image, error) {
	gt, err := bk.GridTensor(cols, pad)
	if err != nil {
		return nil, err
	}
	return GridImage(gt, scale), nil
}

// SavePNG renders the full bank grid and saves it as a PNG image.
func (bk *Bank) SavePNG(fname string, cols, pad, scale int) error {
	img, err := bk.GridImage(cols, pad, scale)
	if err != nil {
		return err
	}
	return imgio.Save(fname, img, imgio.PNGEncoder())
}
