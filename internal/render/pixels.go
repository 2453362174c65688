package render

import "image/color"

// fillLightRGBA converts light intensities into RGBA pixels in buf, blending
// from the off color at intensity 0 to the on color at intensity 1.
// Intensities outside [0, 1] are clamped.
func fillLightRGBA(buf []byte, light []float32, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, v := range light {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		base := i * 4
		buf[base+0] = blend8(rOff, rOn, v)
		buf[base+1] = blend8(gOff, gOn, v)
		buf[base+2] = blend8(bOff, bOn, v)
		buf[base+3] = blend8(aOff, aOn, v)
	}
}

// blend8 interpolates between two 16-bit color components and narrows the
// result to 8 bits.
func blend8(off, on uint32, t float32) uint8 {
	v := float32(off) + (float32(on)-float32(off))*t
	return uint8(uint32(v+0.5) >> 8)
}
