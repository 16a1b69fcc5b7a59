// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"cogentcore.org/material/base/tolassert"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func TestARGB(t *testing.T) {
	c := ARGBFromRGB(0x12, 0x34, 0x56)
	assert.Equal(t, uint32(0xff123456), c)
	assert.Equal(t, 0xff, AlphaFromARGB(c))
	assert.Equal(t, 0x12, RedFromARGB(c))
	assert.Equal(t, 0x34, GreenFromARGB(c))
	assert.Equal(t, 0x56, BlueFromARGB(c))
	assert.True(t, IsOpaque(c))
	assert.False(t, IsOpaque(0x7f123456))

	// out of range components are masked, never spill into neighbors
	assert.Equal(t, uint32(0xff00ff00), ARGBFromRGB(256, 255, 512))
}

func TestLinearized(t *testing.T) {
	assert.Equal(t, 0.0, Linearized(0))
	tolassert.Equal(t, 100.0, Linearized(255))
	for i := 0; i <= 255; i++ {
		assert.Equal(t, i, Delinearized(Linearized(i)), "component %d", i)
	}
	assert.Equal(t, 0, Delinearized(-10))
	assert.Equal(t, 255, Delinearized(120))

	// linear segment below 0.0031308
	tolassert.Equal(t, 0.0031308*12.92, SRGBFromLinearComp(0.0031308))
	tolassert.Equal(t, 0.00015479876, SRGBToLinearComp(0.002))
	tolassert.EqualTol(t, 0.233022, SRGBToLinearComp(0.52), 1e-4)
	tolassert.EqualTol(t, 0.843389, SRGBFromLinearComp(0.68), 1e-4)

	r, g, b := SRGBFromLinear(SRGBToLinear(0.3, 0.2, 0.6))
	tolassert.Equal(t, 0.3, r)
	tolassert.Equal(t, 0.2, g)
	tolassert.Equal(t, 0.6, b)
}

func TestLstar(t *testing.T) {
	assert.Equal(t, uint32(0xff000000), ARGBFromLstar(0))
	assert.Equal(t, uint32(0xffffffff), ARGBFromLstar(100))
	assert.Equal(t, uint32(0xff777777), ARGBFromLstar(50))

	tolassert.Equal(t, 0.0, LstarFromARGB(0xff000000))
	tolassert.EqualTol(t, 100.0, LstarFromARGB(0xffffffff), 1e-4)

	for l := 0.0; l <= 100; l += 0.5 {
		tolassert.EqualTol(t, l, LstarFromY(YFromLstar(l)), 1e-8)
	}
	tolassert.EqualTol(t, 18.4187, YFromLstar(50), 1e-3)
	tolassert.EqualTol(t, 2.3023, YFromLstar(17), 1e-3)
	tolassert.EqualTol(t, 21.579, LstarFromY(3.4), 1e-2)
}

func TestLABCompress(t *testing.T) {
	tolassert.EqualTol(t, 0.887904, LABCompress(0.7), 1e-6)
	tolassert.EqualTol(t, 0.1379544, LABCompress(0.000003), 1e-6)
	tolassert.EqualTol(t, 0.216, LABUncompress(0.6), 1e-6)
}

func TestXYZRoundTrip(t *testing.T) {
	for r := 0; r <= 255; r += 15 {
		for g := 0; g <= 255; g += 15 {
			for b := 0; b <= 255; b += 15 {
				c := ARGBFromRGB(r, g, b)
				xyz := XYZFromARGB(c)
				assert.Equal(t, c, ARGBFromXYZ(xyz[0], xyz[1], xyz[2]))
				l, a, bb := LabFromARGB(c)
				assert.Equal(t, c, ARGBFromLab(l, a, bb))
			}
		}
	}
}

// TestAgainstColorful checks our conversions against an
// independent implementation.
func TestAgainstColorful(t *testing.T) {
	samples := []uint32{0xff000000, 0xffffffff, 0xffff0000, 0xff00ff00, 0xff0000ff,
		0xff6750a4, 0xff4285f4, 0xff127fcd, 0xffb259cb, 0xff11265b}
	for _, c := range samples {
		cf := colorful.Color{
			R: float64(RedFromARGB(c)) / 255,
			G: float64(GreenFromARGB(c)) / 255,
			B: float64(BlueFromARGB(c)) / 255,
		}
		x, y, z := cf.Xyz()
		xyz := XYZFromARGB(c)
		tolassert.EqualTol(t, x*100, xyz[0], 0.05)
		tolassert.EqualTol(t, y*100, xyz[1], 0.05)
		tolassert.EqualTol(t, z*100, xyz[2], 0.05)

		cl, ca, cb := cf.Lab()
		l, a, b := LabFromARGB(c)
		tolassert.EqualTol(t, cl*100, l, 0.05)
		tolassert.EqualTol(t, ca*100, a, 0.1)
		tolassert.EqualTol(t, cb*100, b, 0.1)
	}
}
