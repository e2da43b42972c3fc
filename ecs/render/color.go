package render

import "image/color"

// VertexColor returns clr as straight-alpha components in [0, 1], the form
// vertex colors take under the default color scale mode.
func VertexColor(clr color.Color) (r, g, b, a float32) {
	if clr == nil {
		return 0, 0, 0, 0
	}
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	return float32(n.R) / 0xff, float32(n.G) / 0xff, float32(n.B) / 0xff, float32(n.A) / 0xff
}
